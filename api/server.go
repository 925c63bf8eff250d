package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/smart-waste/finder-api/logmodule"
	"github.com/smart-waste/finder-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.WasteStore
}

// NewServer new instance of server
func NewServer(wasteStore store.WasteStore) *Server {
	return &Server{
		store: wasteStore,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	// the map client is a browser app served from another origin
	r.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/", s.root)
	r.GET("/health", s.healthz)
	r.GET("/healthz", s.healthz)
	r.GET("/test", s.testDatabase)
	r.GET("/schema", s.describeSchema)

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	stationRoute := apiRoute.Group("/stations")
	{
		stationRoute.GET("", s.listStations)
		stationRoute.POST("", s.createStation)
		stationRoute.GET("/nearby", s.nearbyStations)
	}

	recommendationRoute := apiRoute.Group("/recommendations")
	{
		recommendationRoute.GET("", s.listRecommendations)
		recommendationRoute.POST("", s.createRecommendation)
		recommendationRoute.POST("/feedback", s.submitFeedback)
	}

	apiRoute.POST("/seed", s.seedSampleData)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Smart Waste Finder backend is running",
	})
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
