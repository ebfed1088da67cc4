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

	"github.com/linkme/linkme-api/help"
	"github.com/linkme/linkme-api/logmodule"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// help matching operations
	service *help.Service

	// session token signing
	tokens *TokenIssuer
}

// NewServer new instance of server
func NewServer(service *help.Service, tokens *TokenIssuer) *Server {
	return &Server{
		service: service,
		tokens:  tokens,
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
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept-Language", "Geo-Position"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/register", s.register)
		authRoute.POST("/login", s.login)
	}

	// api route other than `/information` and `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	userRoute := apiRoute.Group("/users")
	{
		userRoute.GET("/:id", s.userDetail)
		userRoute.PATCH("/me", s.userUpdateProfile)
	}

	helpRoute := apiRoute.Group("/help-requests")
	{
		helpRoute.GET("", s.listHelpRequests)
		helpRoute.POST("", s.createHelpRequest)
		helpRoute.GET("/:id", s.helpRequestDetail)
		helpRoute.POST("/:id/accept", s.acceptHelpRequest)
		helpRoute.POST("/:id/cancel", s.cancelHelpRequest)
	}

	conversationRoute := apiRoute.Group("/conversations")
	{
		conversationRoute.GET("", s.listConversations)
		conversationRoute.POST("", s.createConversation)
		conversationRoute.GET("/:id", s.conversationDetail)
		conversationRoute.GET("/:id/messages", s.listMessages)
		conversationRoute.POST("/:id/messages", s.sendMessage)
		conversationRoute.PUT("/:id/messages/read", s.markMessagesRead)
	}

	ratingRoute := apiRoute.Group("/ratings")
	{
		ratingRoute.POST("", s.submitRating)
		ratingRoute.GET("/check", s.checkRating)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
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

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.service.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"android":        viper.GetStringMap("clients.android"),
			"ios":            viper.GetStringMap("clients.ios"),
			"system_version": "LinkMe 1.0",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	obj = localize(c, obj)

	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
