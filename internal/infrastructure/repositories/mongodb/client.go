package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	usersCollection     = "users"
	videosCollection    = "videos"
	commentsCollection  = "comments"
	likesCollection     = "likes"
	tweetsCollection    = "tweets"
	playlistsCollection = "playlists"
)

// Client owns the driver connection and hands out the database handle.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the store and verifies the connection with a ping.
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Client{
		client: client,
		db:     client.Database(database),
	}, nil
}

// Database returns the handle repositories are built on.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Close disconnects from the store.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
