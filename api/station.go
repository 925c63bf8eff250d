package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-waste/finder-api/schema"
	"github.com/smart-waste/finder-api/store"
)

type stationListParams struct {
	Type     string   `form:"type"`
	Query    string   `form:"query"`
	Limit    int64    `form:"limit,default=50" binding:"min=1,max=200"`
	Lat      *float64 `form:"lat"`
	Lng      *float64 `form:"lng"`
	RadiusKM float64  `form:"radius_km"`
}

func (s *Server) listStations(c *gin.Context) {
	var params stationListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusUnprocessableEntity, errorInvalidParameters, err)
		return
	}

	filter := store.StationFilter{
		Type:   schema.StationType(params.Type),
		Search: params.Query,
		Limit:  params.Limit,
	}
	if params.Lat != nil && params.Lng != nil && params.RadiusKM > 0 {
		filter.Center = &schema.Location{
			Latitude:  *params.Lat,
			Longitude: *params.Lng,
		}
		filter.RadiusKM = params.RadiusKM
	}

	stations, err := s.store.ListStations(filter)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, stations)
}

func (s *Server) createStation(c *gin.Context) {
	var body schema.Station
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusUnprocessableEntity, errorCannotParseRequest, err)
		return
	}

	if err := body.Validate(); err != nil {
		abortWithEncoding(c, http.StatusUnprocessableEntity, errorValidation(err), err)
		return
	}

	station, err := s.store.CreateStation(body)
	if err != nil {
		switch err {
		case store.ErrEmptyAddress:
			abortWithEncoding(c, http.StatusBadRequest, errorEmptyAddress, err)
		default:
			abortWithEncoding(c, http.StatusBadRequest, errorInsertFailed(err), err)
		}
		return
	}

	c.JSON(http.StatusCreated, station)
}

type nearbyParams struct {
	Lat   *float64 `form:"lat" binding:"required"`
	Lng   *float64 `form:"lng" binding:"required"`
	Limit int64    `form:"limit,default=10" binding:"min=1,max=100"`
}

func (s *Server) nearbyStations(c *gin.Context) {
	var params nearbyParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	stations, err := s.store.NearbyStations(*params.Lat, *params.Lng, params.Limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, stations)
}
