package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkme/linkme-api/help"
	"github.com/linkme/linkme-api/schema"
)

// userDetail is the API to query a user profile. `me` refers to the caller.
func (s *Server) userDetail(c *gin.Context) {
	session := sessionFrom(c)

	id := c.Param("id")
	if id == "me" {
		id = session.UserID
	}

	user, err := s.service.GetUser(c, session, id)
	if err != nil {
		if errors.Is(err, help.ErrNotFound) {
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound, err)
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": user})
}

// userUpdateProfile is the API to update the caller's name, role or help
// categories. Omitted fields are left untouched.
func (s *Server) userUpdateProfile(c *gin.Context) {
	var params struct {
		Name           *string              `json:"name"`
		Role           *schema.Role         `json:"role"`
		HelpCategories *[]schema.CategoryID `json:"helpCategories"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	user, err := s.service.UpdateProfile(c, sessionFrom(c), help.ProfileInput{
		Name:           params.Name,
		Role:           params.Role,
		HelpCategories: params.HelpCategories,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": user})
}
