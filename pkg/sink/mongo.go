package sink

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/injectgraph/pkg/errors"
)

// Default MongoDB locations.
const (
	DefaultDatabase   = "injectgraph"
	DefaultCollection = "graphs"
)

// mongoCollection is the subset of *mongo.Collection the sink needs.
type mongoCollection interface {
	InsertOne(ctx context.Context, document any, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// MongoSink inserts one document per run. The run ID is the _id, so
// publishing the same run twice is rejected by the server.
type MongoSink struct {
	coll       mongoCollection
	disconnect func(context.Context) error
}

// OpenMongo connects to the MongoDB deployment named by u.
func OpenMongo(ctx context.Context, u *url.URL) (*MongoSink, error) {
	db := strings.Trim(u.Path, "/")
	if db == "" {
		db = DefaultDatabase
	}
	q := u.Query()
	coll := q.Get("collection")
	if coll == "" {
		coll = DefaultCollection
	}
	q.Del("collection")
	clean := *u
	clean.RawQuery = q.Encode()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(clean.String()))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSinkFailed, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeSinkFailed, err, "ping mongodb")
	}
	return &MongoSink{
		coll:       client.Database(db).Collection(coll),
		disconnect: client.Disconnect,
	}, nil
}

func (s *MongoSink) Name() string { return "mongodb" }

func (s *MongoSink) Publish(ctx context.Context, doc *Document) error {
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert %s: %w", doc.ID, err)
	}
	return nil
}

func (s *MongoSink) Close(ctx context.Context) error {
	if s.disconnect == nil {
		return nil
	}
	return s.disconnect(ctx)
}
