package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/smart-waste/finder-api/schema"
)

type Feedback interface {
	CreateFeedback(feedback schema.RecommendationFeedback) (*schema.RecommendationFeedback, error)
}

// CreateFeedback records a thumbs up/down on a recommendation item
func (m *mongoDB) CreateFeedback(feedback schema.RecommendationFeedback) (*schema.RecommendationFeedback, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	result, err := c.InsertOne(ctx, feedback)
	if err != nil {
		return nil, err
	}

	var stored schema.RecommendationFeedback
	query := bson.M{"_id": result.InsertedID.(primitive.ObjectID)}
	if err := c.FindOne(ctx, query).Decode(&stored); err != nil {
		return nil, err
	}

	return &stored, nil
}
