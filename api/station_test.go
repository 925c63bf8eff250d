package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/smart-waste/finder-api/api/mocks"
	"github.com/smart-waste/finder-api/schema"
	"github.com/smart-waste/finder-api/store"
)

func TestListStations(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockWasteStore(ctl)
	s := Server{store: m}

	stations := []schema.Station{
		{ID: primitive.NewObjectID(), Name: "GreenCycle Center", Type: schema.StationTypeRecycling},
		{ID: primitive.NewObjectID(), Name: "Hudson Recycling Hub", Type: schema.StationTypeRecycling},
	}

	m.EXPECT().ListStations(gomock.Eq(store.StationFilter{
		Type:  schema.StationTypeRecycling,
		Limit: 50,
	})).Return(stations, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.listStations)

	req := httptest.NewRequest("GET", "/?type=recycling", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp []schema.Station
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp, 2)
	assert.Equal(t, "GreenCycle Center", jResp[0].Name)
}

func TestListStationsWithBoundingBox(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockWasteStore(ctl)
	s := Server{store: m}

	m.EXPECT().ListStations(gomock.Eq(store.StationFilter{
		Search: "depot",
		Center: &schema.Location{
			Latitude:  37.7749,
			Longitude: -122.4194,
		},
		RadiusKM: 5,
		Limit:    50,
	})).Return([]schema.Station{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.listStations)

	req := httptest.NewRequest("GET", "/?query=depot&lat=37.7749&lng=-122.4194&radius_km=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestListStationsRejectsOversizedLimit(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockWasteStore(ctl)
	s := Server{store: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.listStations)

	req := httptest.NewRequest("GET", "/?limit=500", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "wrong status code")
}

func TestListStationsRejectsZeroLimit(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockWasteStore(ctl)
	s := Server{store: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.listStations)

	// limit=0 would disable the cap in the store, so it must never
	// reach it
	req := httptest.NewRequest("GET", "/?limit=0", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "wrong status code")
}

func TestCreateStation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockWasteStore(ctl)
	s := Server{store: m}

	stored := schema.Station{
		ID:        primitive.NewObjectID(),
		Name:      "Compost Corner",
		Type:      schema.StationTypeCompost,
		Address:   "77 Garden Way",
		Latitude:  37.70,
		Longitude: -122.45,
		Services:  []string{},
	}

	m.EXPECT().CreateStation(gomock.Any()).Return(&stored, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.createStation)

	body := `{"name":"Compost Corner","type":"compost","address":"77 Garden Way","latitude":37.70,"longitude":-122.45}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var jResp schema.Station
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, stored.ID, jResp.ID)
	assert.Equal(t, "Compost Corner", jResp.Name)
}

func TestCreateStationRejectsBadCoordinates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockWasteStore(ctl)
	s := Server{store: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.createStation)

	body := `{"name":"Off The Map","type":"dump","address":"1 Nowhere","latitude":95.0,"longitude":10.0}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "wrong status code")
}

func TestCreateStationReportsInsertFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockWasteStore(ctl)
	s := Server{store: m}

	m.EXPECT().CreateStation(gomock.Any()).Return(nil, assert.AnError).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.createStation)

	body := `{"name":"GreenCycle Center","type":"recycling","address":"123 Elm St","latitude":37.7749,"longitude":-122.4194}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, assert.AnError.Error(), jResp.Message)
}

func TestCreateStationWithoutAddress(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockWasteStore(ctl)
	s := Server{store: m}

	m.EXPECT().CreateStation(gomock.Any()).Return(nil, store.ErrEmptyAddress).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.createStation)

	body := `{"name":"Hazmat Point","type":"hazmat","latitude":37.71,"longitude":-122.46}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, store.ErrEmptyAddress.Error(), jResp.Message)
}

func TestNearbyStations(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockWasteStore(ctl)
	s := Server{store: m}

	stations := []schema.Station{
		{Name: "GreenCycle Center", Latitude: 37.7749, Longitude: -122.4194},
		{Name: "City Dump Yard", Latitude: 37.78, Longitude: -122.41},
	}

	m.EXPECT().NearbyStations(37.7749, -122.4194, int64(10)).Return(stations, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.nearbyStations)

	req := httptest.NewRequest("GET", "/?lat=37.7749&lng=-122.4194", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp []schema.Station
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp, 2)
	assert.Equal(t, "GreenCycle Center", jResp[0].Name)
	assert.Equal(t, "City Dump Yard", jResp[1].Name)
}

func TestNearbyStationsRejectsZeroLimit(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockWasteStore(ctl)
	s := Server{store: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.nearbyStations)

	req := httptest.NewRequest("GET", "/?lat=37.7749&lng=-122.4194&limit=0", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestNearbyStationsRequiresCoordinates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockWasteStore(ctl)
	s := Server{store: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.nearbyStations)

	req := httptest.NewRequest("GET", "/?lat=37.7749", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}
