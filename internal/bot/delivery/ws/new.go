package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"chatterbox/internal/session"
	pkgLog "chatterbox/pkg/log"
)

// Handler is the public interface for the chat WebSocket delivery layer.
type Handler interface {
	HandleChat(c *gin.Context)
}

// Config tunes the socket transport.
type Config struct {
	ReadLimit  int64         // Max inbound frame size in bytes
	PingPeriod time.Duration // Server ping interval; pong wait derives from it
}

type handler struct {
	l          pkgLog.Logger
	sessions   *session.Store
	upgrader   websocket.Upgrader
	readLimit  int64
	pingPeriod time.Duration
	pongWait   time.Duration
	writeWait  time.Duration
}

// New creates a new WebSocket handler for the chat domain.
func New(l pkgLog.Logger, sessions *session.Store, cfg Config) Handler {
	if cfg.ReadLimit <= 0 {
		cfg.ReadLimit = 16 * 1024
	}
	if cfg.PingPeriod <= 0 {
		cfg.PingPeriod = 30 * time.Second
	}

	return &handler{
		l:         l,
		sessions:  sessions,
		readLimit: cfg.ReadLimit,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Demo service: allow connections from any origin
			},
		},
		pingPeriod: cfg.PingPeriod,
		// Pong must arrive before the next ping would be overdue.
		pongWait:  cfg.PingPeriod * 10 / 9,
		writeWait: 10 * time.Second,
	}
}
