package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-waste/finder-api/schema"
)

type collectionSchema struct {
	Name       string            `json:"name"`
	Collection string            `json:"collection"`
	Fields     map[string]string `json:"fields"`
}

// catalog of the stored document types, for viewers and tools
var schemaCatalog = []collectionSchema{
	{
		Name:       "Account",
		Collection: schema.AccountCollection,
		Fields: map[string]string{
			"name":      "string, required",
			"email":     "string, required",
			"city":      "string, optional",
			"is_active": "bool",
		},
	},
	{
		Name:       "Station",
		Collection: schema.StationCollection,
		Fields: map[string]string{
			"name":         "string, required",
			"type":         "enum: dump|recycling|ewaste|compost|hazmat",
			"address":      "string, required",
			"latitude":     "float, -90..90",
			"longitude":    "float, -180..180",
			"rating":       "float, 0..5, optional",
			"review_count": "int, >= 0",
			"phone":        "string, optional",
			"website":      "url, optional",
			"hours":        "string, optional",
			"services":     "list of strings",
		},
	},
	{
		Name:       "Recommendation",
		Collection: schema.RecommendationCollection,
		Fields: map[string]string{
			"title":       "string, required",
			"description": "string, optional",
			"image":       "url, optional",
			"station_id":  "string, optional",
			"tags":        "list of strings",
		},
	},
	{
		Name:       "RecommendationFeedback",
		Collection: schema.FeedbackCollection,
		Fields: map[string]string{
			"item_id": "string, required",
			"action":  "enum: up|down",
			"reason":  "string, optional",
			"user_id": "string, optional",
		},
	},
}

func (s *Server) describeSchema(c *gin.Context) {
	c.JSON(http.StatusOK, schemaCatalog)
}
