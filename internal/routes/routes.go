package routes

import (
	"net/http"
	"time"

	"github.com/baraholka/baraholka-backend/internal/handler"
	"github.com/baraholka/baraholka-backend/internal/middleware"
	"github.com/baraholka/baraholka-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// Setup registers all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	memberHandler *handler.MemberHandler,
	adHandler *handler.AdHandler,
	chatHandler *handler.ChatHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api")
	auth := middleware.JWTAuth(jwtManager)

	api.GET("/hello", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello!", "timestamp": time.Now().UTC()})
	})

	// Auth
	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// Members
	members := api.Group("/members")
	members.GET("/me", auth, memberHandler.GetMe)
	members.PUT("/me", auth, memberHandler.UpdateMe)
	members.GET("/:id", memberHandler.GetProfile)

	// Ads
	ads := api.Group("/ads")
	ads.GET("", adHandler.List)
	ads.POST("", auth, adHandler.Create)
	ads.GET("/:id", adHandler.Get)
	ads.PUT("/:id", auth, adHandler.Update)
	ads.DELETE("/:id", auth, adHandler.Delete)

	// Chat
	chat := api.Group("/chat", auth)
	chat.GET("/threads", chatHandler.ListThreads)
	chat.POST("/threads", chatHandler.CreateThread)
	chat.GET("/threads/:id/messages", chatHandler.ListMessages)
	chat.POST("/threads/:id/messages", chatHandler.SendMessage)
	chat.POST("/messages/:id/read", chatHandler.MarkRead)
}
