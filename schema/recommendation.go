package schema

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RecommendationCollection = "recommendation"
)

// Recommendation - a tip shown in the client's recommendation drawer,
// optionally pointing at a station
type Recommendation struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	StationID   string             `json:"station_id,omitempty" bson:"station_id,omitempty"`
	Tags        []string           `json:"tags" bson:"tags"`
}

func (r Recommendation) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("recommendation title is required")
	}
	if r.Image != "" && !validHTTPURL(r.Image) {
		return fmt.Errorf("invalid image url: %s", r.Image)
	}
	return nil
}
