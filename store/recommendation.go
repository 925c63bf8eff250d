package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smart-waste/finder-api/schema"
)

type Recommendation interface {
	CreateRecommendation(recommendation schema.Recommendation) (*schema.Recommendation, error)
	ListRecommendations(limit int64) ([]schema.Recommendation, error)
}

// CreateRecommendation inserts a recommendation and reads back the stored
// document
func (m *mongoDB) CreateRecommendation(recommendation schema.Recommendation) (*schema.Recommendation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if recommendation.Tags == nil {
		recommendation.Tags = []string{}
	}

	c := m.client.Database(m.database).Collection(schema.RecommendationCollection)

	result, err := c.InsertOne(ctx, recommendation)
	if err != nil {
		return nil, err
	}

	var stored schema.Recommendation
	query := bson.M{"_id": result.InsertedID.(primitive.ObjectID)}
	if err := c.FindOne(ctx, query).Decode(&stored); err != nil {
		return nil, err
	}

	return &stored, nil
}

// ListRecommendations returns recommendations in insertion order
func (m *mongoDB) ListRecommendations(limit int64) ([]schema.Recommendation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RecommendationCollection)

	opts := options.Find()
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	recommendations := make([]schema.Recommendation, 0)
	if err := cursor.All(ctx, &recommendations); err != nil {
		return nil, err
	}

	return recommendations, nil
}
