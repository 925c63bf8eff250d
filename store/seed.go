package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/smart-waste/finder-api/schema"
)

type Seeder interface {
	Seed() (int, error)
}

func float64Ptr(f float64) *float64 {
	return &f
}

var sampleStations = []schema.Station{
	{
		Name:        "GreenCycle Center",
		Type:        schema.StationTypeRecycling,
		Address:     "123 Elm St",
		Latitude:    37.7749,
		Longitude:   -122.4194,
		Rating:      float64Ptr(4.7),
		ReviewCount: 128,
		Services:    []string{"plastic", "paper", "metal"},
	},
	{
		Name:        "City Dump Yard",
		Type:        schema.StationTypeDump,
		Address:     "45 Industrial Rd",
		Latitude:    37.78,
		Longitude:   -122.41,
		Rating:      float64Ptr(4.1),
		ReviewCount: 63,
		Services:    []string{"bulk", "construction"},
	},
	{
		Name:        "Tech E-Waste Depot",
		Type:        schema.StationTypeEWaste,
		Address:     "9 Silicon Ave",
		Latitude:    37.76,
		Longitude:   -122.42,
		Rating:      float64Ptr(4.8),
		ReviewCount: 204,
		Services:    []string{"electronics", "batteries"},
	},
}

var sampleRecommendations = []schema.Recommendation{
	{
		Title:       "Recycle plastics today",
		Description: "Drop-off at GreenCycle before 6pm",
		Tags:        []string{"recycling", "plastic"},
	},
	{
		Title:       "Dispose e-waste safely",
		Description: "Tech Depot accepts laptops",
		Tags:        []string{"ewaste"},
	},
}

// Seed inserts sample stations and recommendations into collections that
// are still empty and reports how many documents were added. A second call
// against a seeded database inserts nothing.
func (m *mongoDB) Seed() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)
	inserted := 0

	stations := db.Collection(schema.StationCollection)
	count, err := stations.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	if count == 0 {
		docs := make([]interface{}, 0, len(sampleStations))
		for _, s := range sampleStations {
			docs = append(docs, s)
		}
		result, err := stations.InsertMany(ctx, docs)
		if err != nil {
			return inserted, err
		}
		inserted += len(result.InsertedIDs)
	}

	recommendations := db.Collection(schema.RecommendationCollection)
	count, err = recommendations.CountDocuments(ctx, bson.M{})
	if err != nil {
		return inserted, err
	}
	if count == 0 {
		docs := make([]interface{}, 0, len(sampleRecommendations))
		for _, r := range sampleRecommendations {
			docs = append(docs, r)
		}
		result, err := recommendations.InsertMany(ctx, docs)
		if err != nil {
			return inserted, err
		}
		inserted += len(result.InsertedIDs)
	}

	log.WithField("prefix", mongoLogPrefix).Infof("seeded %d sample documents", inserted)

	return inserted, nil
}
