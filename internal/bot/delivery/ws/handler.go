package ws

import (
	"context"

	"github.com/gin-gonic/gin"

	"chatterbox/internal/bot"
)

// HandleChat upgrades the connection and runs one conversation over it.
// Each inbound text frame is one Process call; the reply goes back as one
// outbound frame. Reconnect/backoff is the client's job, not ours.
func (h *handler) HandleChat(c *gin.Context) {
	ctx := c.Request.Context()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Errorf(ctx, "ws handler: upgrade failed: %v", err)
		return
	}

	sessionID, responder, err := h.sessions.GetOrCreate(ctx, c.Query("session_id"))
	if err != nil {
		h.l.Errorf(ctx, "ws handler: session create failed: %v", err)
		conn.WriteJSON(Frame{Type: FrameTypeError, Content: "failed to create session"})
		conn.Close()
		return
	}

	cl := &client{
		h:         h,
		conn:      conn,
		responder: responder,
		sessionID: sessionID,
		send:      make(chan Frame, 16),
	}

	cl.send <- Frame{
		Type:      FrameTypeWelcome,
		Content:   bot.WelcomeResponse,
		SessionID: sessionID,
	}

	go cl.writePump()
	cl.readPump(context.Background())
}
