package http

import (
	"github.com/gin-gonic/gin"

	"chatterbox/internal/session"
	pkgLog "chatterbox/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	SendMessage(c *gin.Context)
	History(c *gin.Context)
	ClearHistory(c *gin.Context)
}

type handler struct {
	l         pkgLog.Logger
	sessions  *session.Store
	maxMsgLen int
}

// New creates a new HTTP handler for the chat domain. maxMsgLen caps message
// size before input ever reaches the engine.
func New(l pkgLog.Logger, sessions *session.Store, maxMsgLen int) Handler {
	return &handler{
		l:         l,
		sessions:  sessions,
		maxMsgLen: maxMsgLen,
	}
}
