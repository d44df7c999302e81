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

type videoRepository struct {
	col *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) ports.VideoRepository {
	return &videoRepository{col: db.Collection(videosCollection)}
}

func (r *videoRepository) Create(ctx context.Context, video *domain.Video) error {
	now := time.Now().UTC()
	video.CreatedAt = now
	video.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, video)
	if err != nil {
		return err
	}
	video.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	var video domain.Video
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&video); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.VideoUpdate) (*domain.Video, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Duration != nil {
		set["duration"] = *update.Duration
	}
	if update.IsPublished != nil {
		set["isPublished"] = *update.IsPublished
	}
	if update.Thumbnail != nil {
		set["thumbnail"] = *update.Thumbnail
	}
	if update.ThumbnailPublicID != nil {
		set["thumbnailPublicId"] = *update.ThumbnailPublicID
	}

	var video domain.Video
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) SetPublished(ctx context.Context, id primitive.ObjectID, published bool) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"isPublished": published,
		"updatedAt":   time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

func (r *videoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

func (r *videoRepository) List(ctx context.Context, filter ports.VideoFilter, page ports.Page) ([]domain.Video, error) {
	dir := -1
	if filter.SortAsc {
		dir = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: filter.SortBy, Value: dir}}).
		SetSkip(page.Skip).
		SetLimit(page.Limit)

	cursor, err := r.col.Find(ctx, listFilter(filter), opts)
	if err != nil {
		return nil, err
	}

	videos := []domain.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) Count(ctx context.Context, filter ports.VideoFilter) (int64, error) {
	return r.col.CountDocuments(ctx, listFilter(filter))
}

func listFilter(filter ports.VideoFilter) bson.M {
	query := bson.M{}
	if filter.TitleQuery != "" {
		query["title"] = bson.M{"$regex": filter.TitleQuery, "$options": "i"}
	}
	if filter.Owner != nil {
		query["owner"] = *filter.Owner
	}
	return query
}

func (r *videoRepository) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Video, error) {
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	videos := []domain.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]domain.Video, error) {
	cursor, err := r.col.Find(ctx, bson.M{"owner": owner},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	videos := []domain.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) IDsByOwner(ctx context.Context, owner primitive.ObjectID) ([]primitive.ObjectID, error) {
	cursor, err := r.col.Find(ctx, bson.M{"owner": owner},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}

func (r *videoRepository) CountByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"owner": owner})
}

// SumViewsByOwner folds view counts with a match/group pipeline.
func (r *videoRepository) SumViewsByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": owner}}},
		{{Key: "$group", Value: bson.M{
			"_id":        nil,
			"totalViews": bson.M{"$sum": "$views"},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}

	var results []struct {
		TotalViews int64 `bson:"totalViews"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalViews, nil
}
