package mongodb

import (
	"context"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"wp2mongo/internal/app/errors"
	"wp2mongo/internal/app/model"
)

const (
	// DefaultDatabase is used when the URI names no database
	DefaultDatabase = "test"
	PostsCollection = "posts"

	connectTimeout = 10 * time.Second
)

// PostStore writes posts to the posts collection
type PostStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// Connect opens a client for uri and pings the primary. The database is
// taken from the URI path.
func Connect(ctx context.Context, uri string) (*PostStore, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Mark(err, errors.ErrDatabaseConnection)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Mark(err, errors.ErrDatabaseConnection)
	}

	return &PostStore{
		client:     client,
		collection: client.Database(DatabaseName(uri)).Collection(PostsCollection),
	}, nil
}

// NewPostStore wraps an existing collection, the caller owns its client
func NewPostStore(collection *mongo.Collection) *PostStore {
	return &PostStore{collection: collection}
}

// DatabaseName returns the database named in uri, or DefaultDatabase
func DatabaseName(uri string) string {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil || cs.Database == "" {
		return DefaultDatabase
	}
	return cs.Database
}

// InsertMany writes all posts with a single unordered bulk insert and
// returns how many were inserted. Nothing is sent for an empty slice. On
// failure the count is 0 and the driver error, including any per-document
// write errors, is kept in the chain.
func (s *PostStore) InsertMany(ctx context.Context, posts []model.Post) (int, error) {
	if len(posts) == 0 {
		return 0, nil
	}

	docs := lo.Map(posts, func(p model.Post, _ int) interface{} {
		return p
	})

	result, err := s.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return 0, errors.Mark(err, errors.ErrInsertFailed)
	}

	return len(result.InsertedIDs), nil
}

func (s *PostStore) Disconnect(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
