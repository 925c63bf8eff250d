package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/smart-waste/finder-api/schema"
)

func TestStationQueryEmptyFilter(t *testing.T) {
	query := stationQuery(StationFilter{Limit: 50})
	assert.Equal(t, bson.M{}, query)
}

func TestStationQueryType(t *testing.T) {
	query := stationQuery(StationFilter{Type: schema.StationTypeRecycling})
	assert.Equal(t, bson.M{"type": schema.StationTypeRecycling}, query)
}

func TestStationQuerySearch(t *testing.T) {
	query := stationQuery(StationFilter{Search: "green"})

	or, ok := query["$or"].(bson.A)
	assert.True(t, ok, "$or clause missing")
	assert.Len(t, or, 2)
	assert.Equal(t, bson.M{"name": bson.M{"$regex": "green", "$options": "i"}}, or[0])
	assert.Equal(t, bson.M{"address": bson.M{"$regex": "green", "$options": "i"}}, or[1])
}

func TestStationQueryBoundingBox(t *testing.T) {
	query := stationQuery(StationFilter{
		Center:   &schema.Location{Latitude: 37.7749, Longitude: -122.4194},
		RadiusKM: 111,
	})

	lat, ok := query["latitude"].(bson.M)
	assert.True(t, ok, "latitude range missing")
	assert.InDelta(t, 36.7749, lat["$gte"].(float64), 1e-9)
	assert.InDelta(t, 38.7749, lat["$lte"].(float64), 1e-9)

	lng, ok := query["longitude"].(bson.M)
	assert.True(t, ok, "longitude range missing")
	assert.InDelta(t, -123.4194, lng["$gte"].(float64), 1e-9)
	assert.InDelta(t, -121.4194, lng["$lte"].(float64), 1e-9)
}

func TestStationQueryBoundingBoxRequiresRadius(t *testing.T) {
	query := stationQuery(StationFilter{
		Center: &schema.Location{Latitude: 37.7749, Longitude: -122.4194},
	})

	_, hasLat := query["latitude"]
	assert.False(t, hasLat, "no radius means no box")
}

func TestStationQueryCombined(t *testing.T) {
	query := stationQuery(StationFilter{
		Type:     schema.StationTypeEWaste,
		Search:   "depot",
		Center:   &schema.Location{Latitude: 37.76, Longitude: -122.42},
		RadiusKM: 2,
	})

	assert.Equal(t, schema.StationTypeEWaste, query["type"])
	assert.Contains(t, query, "$or")
	assert.Contains(t, query, "latitude")
	assert.Contains(t, query, "longitude")
}
