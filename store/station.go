package store

import (
	"context"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smart-waste/finder-api/geo"
	"github.com/smart-waste/finder-api/schema"
)

var ErrEmptyAddress = fmt.Errorf("station address is required")

type Station interface {
	CreateStation(station schema.Station) (*schema.Station, error)
	ListStations(filter StationFilter) ([]schema.Station, error)
	NearbyStations(lat, lng float64, limit int64) ([]schema.Station, error)
}

// CreateStation inserts a new station and reads back the stored document.
// When the address is empty it is backfilled by reverse geocoding the
// coordinates, if a geo client is configured.
func (m *mongoDB) CreateStation(station schema.Station) (*schema.Station, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if station.Address == "" {
		if m.geoClient == nil {
			return nil, ErrEmptyAddress
		}
		address, err := m.geoClient.ReverseGeocode(station.Latitude, station.Longitude)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix": mongoLogPrefix,
				"error":  err,
			}).Error("backfill station address")
			return nil, ErrEmptyAddress
		}
		station.Address = address
	}

	if station.Services == nil {
		station.Services = []string{}
	}

	c := m.client.Database(m.database).Collection(schema.StationCollection)

	result, err := c.InsertOne(ctx, station)
	if err != nil {
		return nil, err
	}

	var stored schema.Station
	query := bson.M{"_id": result.InsertedID.(primitive.ObjectID)}
	if err := c.FindOne(ctx, query).Decode(&stored); err != nil {
		return nil, err
	}

	return &stored, nil
}

// ListStations finds stations matching the filter, up to the filter limit
func (m *mongoDB) ListStations(filter StationFilter) ([]schema.Station, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.StationCollection)

	opts := options.Find()
	if filter.Limit > 0 {
		opts = opts.SetLimit(filter.Limit)
	}

	cursor, err := c.Find(ctx, stationQuery(filter), opts)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query stations with error: %s", err)
		return nil, err
	}

	stations := make([]schema.Station, 0)
	if err := cursor.All(ctx, &stations); err != nil {
		return nil, err
	}

	return stations, nil
}

// NearbyStations ranks every station by squared planar distance to the
// given point and returns the closest ones. This is a full scan, not a
// geospatial query.
func (m *mongoDB) NearbyStations(lat, lng float64, limit int64) ([]schema.Station, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.StationCollection)

	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearby stations with error: %s", err)
		return nil, err
	}

	stations := make([]schema.Station, 0)
	if err := cursor.All(ctx, &stations); err != nil {
		return nil, err
	}

	sort.SliceStable(stations, func(i, j int) bool {
		return geo.SquaredDistance(stations[i].Latitude, stations[i].Longitude, lat, lng) <
			geo.SquaredDistance(stations[j].Latitude, stations[j].Longitude, lat, lng)
	})

	if limit > 0 && int64(len(stations)) > limit {
		stations = stations[:limit]
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearby query gets %d stations near lat:%v lng:%v",
		len(stations), lat, lng)

	return stations, nil
}
