package schema

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FeedbackCollection = "recommendationfeedback"
)

type FeedbackAction string

const (
	FeedbackActionUp   FeedbackAction = "up"
	FeedbackActionDown FeedbackAction = "down"
)

// RecommendationFeedback - a thumbs up/down on a recommendation item
type RecommendationFeedback struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ItemID string             `json:"item_id" bson:"item_id"`
	Action FeedbackAction     `json:"action" bson:"action"`
	Reason string             `json:"reason,omitempty" bson:"reason,omitempty"`
	UserID string             `json:"user_id,omitempty" bson:"user_id,omitempty"`
}

func (f RecommendationFeedback) Validate() error {
	if f.ItemID == "" {
		return fmt.Errorf("feedback item_id is required")
	}
	if f.Action != FeedbackActionUp && f.Action != FeedbackActionDown {
		return fmt.Errorf("invalid feedback action: %s", f.Action)
	}
	return nil
}
