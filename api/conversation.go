package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkme/linkme-api/schema"
)

func (s *Server) listConversations(c *gin.Context) {
	conversations, err := s.service.ListConversations(c, sessionFrom(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if conversations == nil {
		conversations = []schema.Conversation{}
	}

	c.JSON(http.StatusOK, gin.H{"result": conversations})
}

// createConversation is the API to open, or reopen, the conversation between
// the caller and another user
func (s *Server) createConversation(c *gin.Context) {
	var params struct {
		ParticipantID   string  `json:"participantId"`
		ParticipantName string  `json:"participantName"`
		HelpRequestID   *string `json:"helpRequestId"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	session := sessionFrom(c)
	conversation, err := s.service.GetOrCreateConversation(c, session,
		session.Participant(),
		schema.Participant{ID: params.ParticipantID, Name: params.ParticipantName},
		params.HelpRequestID,
	)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": conversation})
}

func (s *Server) conversationDetail(c *gin.Context) {
	conversation, err := s.service.GetConversation(c, sessionFrom(c), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": conversation})
}

func (s *Server) listMessages(c *gin.Context) {
	messages, err := s.service.ListMessages(c, sessionFrom(c), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if messages == nil {
		messages = []schema.Message{}
	}

	c.JSON(http.StatusOK, gin.H{"result": messages})
}

func (s *Server) sendMessage(c *gin.Context) {
	var params struct {
		Text string `json:"text"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	message, err := s.service.SendMessage(c, sessionFrom(c), c.Param("id"), params.Text)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": message})
}

// markMessagesRead is the API to mark what the other participant sent as read
func (s *Server) markMessagesRead(c *gin.Context) {
	count, err := s.service.MarkConversationRead(c, sessionFrom(c), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"updated": count}})
}
