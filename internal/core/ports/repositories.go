package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"viewtube/internal/core/domain"
)

// Page is a resolved pagination window.
type Page struct {
	Skip  int64
	Limit int64
}

// VideoFilter narrows and orders a video listing.
type VideoFilter struct {
	TitleQuery string
	Owner      *primitive.ObjectID
	SortBy     string
	SortAsc    bool
}

type UserRepository interface {
	// GetByID loads a user without its password hash and refresh token.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	ProfilesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Profile, error)

	AddSubscriber(ctx context.Context, channelID, userID primitive.ObjectID) error
	RemoveSubscriber(ctx context.Context, channelID, userID primitive.ObjectID) error
	AddSubscription(ctx context.Context, userID, channelID primitive.ObjectID) error
	RemoveSubscription(ctx context.Context, userID, channelID primitive.ObjectID) error
	CountSubscribers(ctx context.Context, channelID primitive.ObjectID) (int64, error)
}

type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error)
	Update(ctx context.Context, id primitive.ObjectID, update domain.VideoUpdate) (*domain.Video, error)
	SetPublished(ctx context.Context, id primitive.ObjectID, published bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	List(ctx context.Context, filter VideoFilter, page Page) ([]domain.Video, error)
	Count(ctx context.Context, filter VideoFilter) (int64, error)
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Video, error)
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]domain.Video, error)
	IDsByOwner(ctx context.Context, owner primitive.ObjectID) ([]primitive.ObjectID, error)
	CountByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error)
	SumViewsByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Comment, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByVideo(ctx context.Context, videoID primitive.ObjectID, page Page) ([]domain.Comment, error)
}

type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// FindByTarget answers domain.ErrLikeNotFound when the user has not
	// liked the target.
	FindByTarget(ctx context.Context, target domain.LikeTarget, targetID, likedBy primitive.ObjectID) (*domain.Like, error)
	ListVideoLikesByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Like, error)
	CountByVideoIDs(ctx context.Context, videoIDs []primitive.ObjectID) (int64, error)
}

type TweetRepository interface {
	Create(ctx context.Context, tweet *domain.Tweet) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Tweet, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*domain.Tweet, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByOwner(ctx context.Context, owner primitive.ObjectID, page Page) ([]domain.Tweet, error)
	CountByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error)
}

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error)
	UpdateDetails(ctx context.Context, id primitive.ObjectID, name, description *string) (*domain.Playlist, error)
	AddVideo(ctx context.Context, id, videoID primitive.ObjectID) (*domain.Playlist, error)
	RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) (*domain.Playlist, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// ListByOwner omits the video arrays from the loaded documents.
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]domain.Playlist, error)
}
