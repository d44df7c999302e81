package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"viewtube/internal/core/domain"
	"viewtube/internal/core/ports"
)

type userRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) ports.UserRepository {
	return &userRepository{col: db.Collection(usersCollection)}
}

// sensitiveFields are never loaded out of the store.
var sensitiveFields = bson.M{"password": 0, "refreshToken": 0}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := r.col.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(sensitiveFields)).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ProfilesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Profile, error) {
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"username": 1, "fullname": 1, "avatar": 1}))
	if err != nil {
		return nil, err
	}

	profiles := []domain.Profile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *userRepository) AddSubscriber(ctx context.Context, channelID, userID primitive.ObjectID) error {
	return r.updateMembership(ctx, channelID, "$addToSet", "subscribers", userID)
}

func (r *userRepository) RemoveSubscriber(ctx context.Context, channelID, userID primitive.ObjectID) error {
	return r.updateMembership(ctx, channelID, "$pull", "subscribers", userID)
}

func (r *userRepository) AddSubscription(ctx context.Context, userID, channelID primitive.ObjectID) error {
	return r.updateMembership(ctx, userID, "$addToSet", "subscribed", channelID)
}

func (r *userRepository) RemoveSubscription(ctx context.Context, userID, channelID primitive.ObjectID) error {
	return r.updateMembership(ctx, userID, "$pull", "subscribed", channelID)
}

func (r *userRepository) updateMembership(ctx context.Context, docID primitive.ObjectID, op, field string, member primitive.ObjectID) error {
	res, err := r.col.UpdateByID(ctx, docID, bson.M{op: bson.M{field: member}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) CountSubscribers(ctx context.Context, channelID primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"subscribed": channelID})
}
