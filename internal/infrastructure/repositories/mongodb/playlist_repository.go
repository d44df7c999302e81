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

type playlistRepository struct {
	col *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) ports.PlaylistRepository {
	return &playlistRepository{col: db.Collection(playlistsCollection)}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	now := time.Now().UTC()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.Videos == nil {
		playlist.Videos = []primitive.ObjectID{}
	}

	res, err := r.col.InsertOne(ctx, playlist)
	if err != nil {
		return err
	}
	playlist.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *playlistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error) {
	var playlist domain.Playlist
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&playlist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) UpdateDetails(ctx context.Context, id primitive.ObjectID, name, description *string) (*domain.Playlist, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if name != nil {
		set["name"] = *name
	}
	if description != nil {
		set["description"] = *description
	}
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

func (r *playlistRepository) AddVideo(ctx context.Context, id, videoID primitive.ObjectID) (*domain.Playlist, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$addToSet": bson.M{"videos": videoID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) (*domain.Playlist, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$pull": bson.M{"videos": videoID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *playlistRepository) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*domain.Playlist, error) {
	var playlist domain.Playlist
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPlaylistNotFound
	}
	return nil
}

func (r *playlistRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]domain.Playlist, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"videos": 0})

	cursor, err := r.col.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, err
	}

	playlists := []domain.Playlist{}
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}
