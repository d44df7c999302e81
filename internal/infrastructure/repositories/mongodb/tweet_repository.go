package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"viewtube/internal/core/domain"
	"viewtube/internal/core/ports"
)

type tweetRepository struct {
	col *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) ports.TweetRepository {
	return &tweetRepository{col: db.Collection(tweetsCollection)}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *domain.Tweet) error {
	now := time.Now().UTC()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, tweet)
	if err != nil {
		return err
	}
	tweet.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *tweetRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Tweet, error) {
	var tweet domain.Tweet
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&tweet); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTweetNotFound
		}
		return nil, err
	}
	return &tweet, nil
}

func (r *tweetRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*domain.Tweet, error) {
	update := bson.M{"$set": bson.M{
		"content":   content,
		"updatedAt": time.Now().UTC(),
	}}

	var tweet domain.Tweet
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&tweet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTweetNotFound
		}
		return nil, err
	}
	return &tweet, nil
}

func (r *tweetRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrTweetNotFound
	}
	return nil
}

func (r *tweetRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID, page ports.Page) ([]domain.Tweet, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip).
		SetLimit(page.Limit)

	cursor, err := r.col.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, err
	}

	tweets := []domain.Tweet{}
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

func (r *tweetRepository) CountByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"owner": owner})
}
