package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// seedSampleData fills empty collections with a few sample stations and
// recommendations
func (s *Server) seedSampleData(c *gin.Context) {
	inserted, err := s.store.Seed()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"inserted": inserted,
	})
}
