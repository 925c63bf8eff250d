package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexStationCollection())
	panicIfError(m.IndexRecommendationCollection())
	panicIfError(m.IndexFeedbackCollection())
	panicIfError(m.IndexAccountCollection())
}

func (m *MongoDBIndexer) IndexStationCollection() error {
	if err := m.createIndex(StationCollection, mongo.IndexModel{
		Keys: bson.M{
			"type": 1,
		},
	}); err != nil {
		return err
	}

	// range filters on both axes back the bounding-box query
	return m.createIndex(StationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "latitude", Value: 1},
			{Key: "longitude", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexRecommendationCollection() error {
	return m.createIndex(RecommendationCollection, mongo.IndexModel{
		Keys: bson.M{
			"station_id": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexFeedbackCollection() error {
	return m.createIndex(FeedbackCollection, mongo.IndexModel{
		Keys: bson.M{
			"item_id": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexAccountCollection() error {
	return m.createIndex(AccountCollection, mongo.IndexModel{
		Keys: bson.M{
			"email": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}
