package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"viewtube/internal/core/domain"
	"viewtube/internal/core/ports"
)

type likeRepository struct {
	col *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) ports.LikeRepository {
	return &likeRepository{col: db.Collection(likesCollection)}
}

func (r *likeRepository) Create(ctx context.Context, like *domain.Like) error {
	like.CreatedAt = time.Now().UTC()

	res, err := r.col.InsertOne(ctx, like)
	if err != nil {
		return err
	}
	like.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *likeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrLikeNotFound
	}
	return nil
}

func (r *likeRepository) FindByTarget(ctx context.Context, target domain.LikeTarget, targetID, likedBy primitive.ObjectID) (*domain.Like, error) {
	filter := bson.M{
		string(target): targetID,
		"likedBy":      likedBy,
	}

	var like domain.Like
	if err := r.col.FindOne(ctx, filter).Decode(&like); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLikeNotFound
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) ListVideoLikesByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Like, error) {
	filter := bson.M{
		"likedBy": userID,
		"video":   bson.M{"$exists": true, "$ne": nil},
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	likes := []domain.Like{}
	if err := cursor.All(ctx, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *likeRepository) CountByVideoIDs(ctx context.Context, videoIDs []primitive.ObjectID) (int64, error) {
	if len(videoIDs) == 0 {
		return 0, nil
	}
	return r.col.CountDocuments(ctx, bson.M{"video": bson.M{"$in": videoIDs}})
}
