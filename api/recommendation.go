package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-waste/finder-api/schema"
)

type recommendationListParams struct {
	Limit int64 `form:"limit,default=20" binding:"min=1,max=100"`
}

func (s *Server) listRecommendations(c *gin.Context) {
	var params recommendationListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusUnprocessableEntity, errorInvalidParameters, err)
		return
	}

	recommendations, err := s.store.ListRecommendations(params.Limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, recommendations)
}

func (s *Server) createRecommendation(c *gin.Context) {
	var body schema.Recommendation
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusUnprocessableEntity, errorCannotParseRequest, err)
		return
	}

	if err := body.Validate(); err != nil {
		abortWithEncoding(c, http.StatusUnprocessableEntity, errorValidation(err), err)
		return
	}

	recommendation, err := s.store.CreateRecommendation(body)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInsertFailed(err), err)
		return
	}

	c.JSON(http.StatusCreated, recommendation)
}

func (s *Server) submitFeedback(c *gin.Context) {
	var body schema.RecommendationFeedback
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusUnprocessableEntity, errorCannotParseRequest, err)
		return
	}

	if err := body.Validate(); err != nil {
		abortWithEncoding(c, http.StatusUnprocessableEntity, errorValidation(err), err)
		return
	}

	feedback, err := s.store.CreateFeedback(body)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInsertFailed(err), err)
		return
	}

	c.JSON(http.StatusCreated, feedback)
}
