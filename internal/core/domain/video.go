package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video is an uploaded video with its hosted assets. PublicID fields hold
// the media-store identifiers needed for later deletion.
type Video struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VideoFile         string             `bson:"videoFile" json:"videoFile"`
	VideoPublicID     string             `bson:"videoPublicId" json:"-"`
	Thumbnail         string             `bson:"thumbnail" json:"thumbnail"`
	ThumbnailPublicID string             `bson:"thumbnailPublicId" json:"-"`
	Title             string             `bson:"title" json:"title"`
	Description       string             `bson:"description" json:"description"`
	Duration          float64            `bson:"duration,omitempty" json:"duration,omitempty"`
	Views             int64              `bson:"views" json:"views"`
	IsPublished       bool               `bson:"isPublished" json:"isPublished"`
	Owner             primitive.ObjectID `bson:"owner" json:"owner"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// VideoUpdate carries the optional fields of a partial video update.
type VideoUpdate struct {
	Title             *string
	Description       *string
	Duration          *float64
	IsPublished       *bool
	Thumbnail         *string
	ThumbnailPublicID *string
}
