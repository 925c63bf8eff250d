package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

func envStatus(name string) string {
	if os.Getenv(name) != "" {
		return "set"
	}
	return "not set"
}

// testDatabase reports connectivity for operators without exposing any
// configuration values
func (s *Server) testDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envStatus("DATABASE_URL"),
		"database_name":     envStatus("DATABASE_NAME"),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if err := s.store.Ping(); err != nil {
		c.Error(err)
		response["database"] = "error: " + err.Error()
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "available"
	response["connection_status"] = "connected"

	names, err := s.store.Collections()
	if err != nil {
		c.Error(err)
		response["database"] = "connected but error: " + err.Error()
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "connected and working"
	response["collections"] = names

	c.JSON(http.StatusOK, response)
}
