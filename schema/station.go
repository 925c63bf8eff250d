package schema

import (
	"fmt"
	"net/url"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StationCollection = "station"
)

// Location is a latitude/longitude pair in degrees
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

type StationType string

const (
	StationTypeDump      StationType = "dump"
	StationTypeRecycling StationType = "recycling"
	StationTypeEWaste    StationType = "ewaste"
	StationTypeCompost   StationType = "compost"
	StationTypeHazmat    StationType = "hazmat"
)

// StationTypes is the set of accepted station categories
var StationTypes = []StationType{
	StationTypeDump,
	StationTypeRecycling,
	StationTypeEWaste,
	StationTypeCompost,
	StationTypeHazmat,
}

func (t StationType) Valid() bool {
	for _, st := range StationTypes {
		if t == st {
			return true
		}
	}
	return false
}

// Station - a waste station location with geocoordinates and metadata
type Station struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Type        StationType        `json:"type" bson:"type"`
	Address     string             `json:"address" bson:"address"`
	Latitude    float64            `json:"latitude" bson:"latitude"`
	Longitude   float64            `json:"longitude" bson:"longitude"`
	Rating      *float64           `json:"rating,omitempty" bson:"rating,omitempty"`
	ReviewCount int                `json:"review_count" bson:"review_count"`
	Phone       string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Website     string             `json:"website,omitempty" bson:"website,omitempty"`
	Hours       string             `json:"hours,omitempty" bson:"hours,omitempty"`
	Services    []string           `json:"services" bson:"services"`
}

// Validate checks field-level constraints before a station is stored
func (s Station) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("station name is required")
	}
	if !s.Type.Valid() {
		return fmt.Errorf("invalid station type: %s", s.Type)
	}
	if s.Latitude < -90 || s.Latitude > 90 {
		return fmt.Errorf("latitude out of range: %f", s.Latitude)
	}
	if s.Longitude < -180 || s.Longitude > 180 {
		return fmt.Errorf("longitude out of range: %f", s.Longitude)
	}
	if s.Rating != nil && (*s.Rating < 0 || *s.Rating > 5) {
		return fmt.Errorf("rating out of range: %f", *s.Rating)
	}
	if s.ReviewCount < 0 {
		return fmt.Errorf("review count must not be negative")
	}
	if s.Website != "" && !validHTTPURL(s.Website) {
		return fmt.Errorf("invalid website url: %s", s.Website)
	}
	return nil
}

func validHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
