package http

import (
	"github.com/gin-gonic/gin"

	"stackql-cloud-intelligence/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.Chat)
		chat.GET("/examples", h.Examples)
		chat.GET("/status", h.Status)
		chat.DELETE("/:session_id", h.Reset)
	}
}
