package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkme/linkme-api/help"
)

// submitRating is the API for one party of a help request to rate the other
func (s *Server) submitRating(c *gin.Context) {
	var params struct {
		ToUserID      string  `json:"toUserId"`
		HelpRequestID string  `json:"helpRequestId"`
		Score         int     `json:"score"`
		Comment       *string `json:"comment"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	rating, err := s.service.SubmitRating(c, sessionFrom(c), help.RatingInput{
		ToUserID:      params.ToUserID,
		HelpRequestID: params.HelpRequestID,
		Score:         params.Score,
		Comment:       params.Comment,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": rating})
}

// checkRating is the API to tell whether the caller already rated a request
func (s *Server) checkRating(c *gin.Context) {
	helpRequestID := c.Query("helpRequestId")
	if helpRequestID == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	rating, rated, err := s.service.HasRated(c, sessionFrom(c), helpRequestID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"hasRated": rated,
		"rating":   rating,
	}})
}
