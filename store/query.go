package store

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/smart-waste/finder-api/geo"
	"github.com/smart-waste/finder-api/schema"
)

// StationFilter narrows a station listing. Zero values leave the
// corresponding condition out of the query.
type StationFilter struct {
	Type     schema.StationType
	Search   string
	Center   *schema.Location
	RadiusKM float64
	Limit    int64
}

func matchStationType(t schema.StationType) bson.M {
	return bson.M{"type": t}
}

// matchNameOrAddress does a case-insensitive substring match on the
// station name or address
func matchNameOrAddress(search string) bson.A {
	return bson.A{
		bson.M{"name": bson.M{"$regex": search, "$options": "i"}},
		bson.M{"address": bson.M{"$regex": search, "$options": "i"}},
	}
}

func matchBoundingBox(box geo.Box) bson.M {
	return bson.M{
		"latitude":  bson.M{"$gte": box.MinLatitude, "$lte": box.MaxLatitude},
		"longitude": bson.M{"$gte": box.MinLongitude, "$lte": box.MaxLongitude},
	}
}

// stationQuery assembles the mongo filter document for a station listing
func stationQuery(filter StationFilter) bson.M {
	query := bson.M{}

	if filter.Type != "" {
		for k, v := range matchStationType(filter.Type) {
			query[k] = v
		}
	}

	if filter.Search != "" {
		query["$or"] = matchNameOrAddress(filter.Search)
	}

	if filter.Center != nil && filter.RadiusKM > 0 {
		box := geo.BoundingBox(filter.Center.Latitude, filter.Center.Longitude, filter.RadiusKM)
		for k, v := range matchBoundingBox(box) {
			query[k] = v
		}
	}

	return query
}
