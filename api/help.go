package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkme/linkme-api/help"
	"github.com/linkme/linkme-api/schema"
)

// listHelpRequests is the API to list help requests. With `userId` it lists
// the requests of that user, otherwise the open ones. Volunteers get the
// open list ranked by match score.
func (s *Server) listHelpRequests(c *gin.Context) {
	session := sessionFrom(c)

	var (
		requests []schema.HelpRequest
		err      error
	)

	if userID := c.Query("userId"); userID != "" {
		if userID == "me" {
			userID = session.UserID
		}
		requests, err = s.service.ListHelpRequestsByUser(c, session, userID)
	} else if session.IsVolunteer() {
		location, lerr := requestLocation(c)
		if lerr != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, lerr)
			return
		}
		requests, err = s.service.ListOpenHelpRequestsForVolunteer(c, session, location)
	} else {
		requests, err = s.service.ListOpenHelpRequests(c, session)
	}

	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if requests == nil {
		requests = []schema.HelpRequest{}
	}

	c.JSON(http.StatusOK, gin.H{"result": requests})
}

// createHelpRequest is the API to post a new help request
func (s *Server) createHelpRequest(c *gin.Context) {
	var params struct {
		Category    schema.CategoryID `json:"category"`
		Description string            `json:"description"`
		Urgency     schema.Urgency    `json:"urgency"`
		Latitude    *float64          `json:"latitude"`
		Longitude   *float64          `json:"longitude"`
		Address     string            `json:"address"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.service.CreateHelpRequest(c, sessionFrom(c), help.HelpRequestInput{
		Category:    params.Category,
		Description: params.Description,
		Urgency:     params.Urgency,
		Latitude:    params.Latitude,
		Longitude:   params.Longitude,
		Address:     params.Address,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": request})
}

// helpRequestDetail is the API to query a help request
func (s *Server) helpRequestDetail(c *gin.Context) {
	request, err := s.service.GetHelpRequest(c, sessionFrom(c), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// acceptHelpRequest is the API for a volunteer to take a help request. The
// response carries the conversation opened with the owner.
func (s *Server) acceptHelpRequest(c *gin.Context) {
	acceptance, err := s.service.AcceptHelpRequest(c, sessionFrom(c), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": acceptance})
}

// cancelHelpRequest is the API for the owner to withdraw an open request
func (s *Server) cancelHelpRequest(c *gin.Context) {
	request, err := s.service.CancelHelpRequest(c, sessionFrom(c), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}
