package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AccountCollection = "account"
)

// Account - a user profile. Registered in the schema catalog and indexed
// for future use; no endpoint reads or writes it yet.
type Account struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	City     string             `json:"city,omitempty" bson:"city,omitempty"`
	IsActive bool               `json:"is_active" bson:"is_active"`
}
