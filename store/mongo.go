package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smart-waste/finder-api/external/geoinfo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// WasteStore - interface for mongodb operations
type WasteStore interface {
	Station
	Recommendation
	Feedback
	Seeder
	Inspector
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

// Inspector - database diagnostics for the connection test endpoint
type Inspector interface {
	Collections() ([]string, error)
}

type mongoDB struct {
	client    *mongo.Client
	database  string
	geoClient geoinfo.GeoInfo
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Collections lists collection names of the configured database
func (m *mongoDB) Collections() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	names, err := m.client.Database(m.database).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewWasteStore - return mongo db operations. geoClient may be nil when
// no maps API key is configured.
func NewWasteStore(client *mongo.Client, database string, geoClient geoinfo.GeoInfo) WasteStore {
	return &mongoDB{
		client:    client,
		database:  database,
		geoClient: geoClient,
	}
}
