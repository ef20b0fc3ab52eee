package http

import (
	"github.com/gin-gonic/gin"

	"chatterbox/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only the message endpoint is rate limited; history reads are cheap.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("/message", mw.RateLimit(), h.SendMessage)
		chat.GET("/history", h.History)
		chat.DELETE("/history", h.ClearHistory)
	}
}
