package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"viewtube/internal/core/domain"
)

// AuthService issues and resolves bearer credentials. ResolveIdentity
// performs the one store lookup of the request: token claims to a live
// user record, sensitive fields excluded.
type AuthService interface {
	GenerateToken(userID primitive.ObjectID) (string, error)
	ResolveIdentity(ctx context.Context, token string) (*domain.User, error)
}

type ListVideosInput struct {
	Page     int
	Limit    int
	Query    string
	SortBy   string
	SortType string
	UserID   string
}

type VideoListResult struct {
	CurrentPage int            `json:"currentPage"`
	TotalPages  int64          `json:"totalPages"`
	TotalVideos int64          `json:"totalVideos"`
	Videos      []domain.Video `json:"videos"`
}

type PublishVideoInput struct {
	Title         string
	Description   string
	Duration      float64
	VideoFilePath string
	ThumbnailPath string
}

type UpdateVideoInput struct {
	Title         *string
	Description   *string
	Duration      *float64
	IsPublished   *bool
	ThumbnailPath string
}

type PublishStatus struct {
	VideoID     string `json:"videoId"`
	IsPublished bool   `json:"isPublished"`
}

type VideoService interface {
	List(ctx context.Context, input ListVideosInput) (*VideoListResult, error)
	Publish(ctx context.Context, owner primitive.ObjectID, input PublishVideoInput) (*domain.Video, error)
	Get(ctx context.Context, videoID string) (*domain.Video, error)
	Update(ctx context.Context, actor primitive.ObjectID, videoID string, input UpdateVideoInput) (*domain.Video, error)
	Delete(ctx context.Context, actor primitive.ObjectID, videoID string) error
	TogglePublish(ctx context.Context, actor primitive.ObjectID, videoID string) (*PublishStatus, error)
}

type CommentService interface {
	ListByVideo(ctx context.Context, videoID string, page, limit int) ([]domain.Comment, error)
	Add(ctx context.Context, actor primitive.ObjectID, videoID, content string) (*domain.Comment, error)
	Update(ctx context.Context, actor primitive.ObjectID, commentID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, actor primitive.ObjectID, commentID string) error
}

// LikeToggleResult reports the outcome of a toggle: Like is set when one
// was created, nil when an existing like was removed.
type LikeToggleResult struct {
	Like    *domain.Like
	Created bool
}

type LikeService interface {
	Toggle(ctx context.Context, actor primitive.ObjectID, target domain.LikeTarget, targetID string) (*LikeToggleResult, error)
	LikedVideos(ctx context.Context, actor primitive.ObjectID) ([]domain.Video, error)
}

type TweetListResult struct {
	Tweets      []domain.Tweet `json:"tweets"`
	TotalTweets int64          `json:"totalTweets"`
	TotalPages  int64          `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}

type TweetService interface {
	Create(ctx context.Context, actor primitive.ObjectID, content string) (*domain.Tweet, error)
	ListByUser(ctx context.Context, userID string, page, limit int) (*TweetListResult, error)
	Update(ctx context.Context, actor primitive.ObjectID, tweetID, content string) (*domain.Tweet, error)
	Delete(ctx context.Context, actor primitive.ObjectID, tweetID string) error
}

type PlaylistService interface {
	Create(ctx context.Context, actor primitive.ObjectID, name, description string) (*domain.Playlist, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Playlist, error)
	Get(ctx context.Context, playlistID string) (*domain.Playlist, error)
	AddVideo(ctx context.Context, actor primitive.ObjectID, playlistID, videoID string) (*domain.Playlist, error)
	RemoveVideo(ctx context.Context, actor primitive.ObjectID, playlistID, videoID string) (*domain.Playlist, error)
	Update(ctx context.Context, actor primitive.ObjectID, playlistID string, name, description *string) (*domain.Playlist, error)
	Delete(ctx context.Context, actor primitive.ObjectID, playlistID string) error
}

type SubscriptionService interface {
	// Toggle answers true when the actor is subscribed after the call.
	Toggle(ctx context.Context, actor primitive.ObjectID, channelID string) (bool, error)
	Subscribers(ctx context.Context, channelID string) ([]domain.Profile, error)
	SubscribedChannels(ctx context.Context, channelID string) ([]domain.Profile, error)
}

type DashboardService interface {
	ChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error)
	ChannelVideos(ctx context.Context, channelID string) ([]domain.Video, error)
}
