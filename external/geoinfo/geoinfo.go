package geoinfo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

var ErrNoAddressFound = fmt.Errorf("no address found for coordinates")

// GeoInfo - reverse geocoding lookups for station coordinates
type GeoInfo interface {
	ReverseGeocode(lat, lng float64) (string, error)
}

type geoInfo struct {
	client *maps.Client
}

// ReverseGeocode resolves a lat/lng pair into a formatted street address
func (g geoInfo) ReverseGeocode(lat, lng float64) (string, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    lat,
		"lng":    lng,
	}).Info("reverse geocode")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{LatLng: &maps.LatLng{
		Lat: lat,
		Lng: lng,
	}})
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", ErrNoAddressFound
	}

	return results[0].FormattedAddress, nil
}

// New - new GeoInfo interface
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
	}, nil
}
