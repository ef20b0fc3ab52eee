package ws

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"chatterbox/internal/bot"
)

type client struct {
	h         *handler
	conn      *websocket.Conn
	responder bot.Responder
	sessionID string
	// Buffered channel of outbound frames.
	send chan Frame
}

// readPump drains inbound frames until the connection dies. Runs on the
// connection's goroutine; closing the send channel stops the write pump.
func (c *client) readPump(ctx context.Context) {
	defer func() {
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(c.h.readLimit)
	c.conn.SetReadDeadline(time.Now().Add(c.h.pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.h.pongWait))
	})

	for {
		msgType, payload, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.h.l.Warnf(ctx, "ws client %s: read error: %v", c.sessionID, err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			c.send <- Frame{
				Type:      FrameTypeError,
				Content:   "only text frames are accepted",
				SessionID: c.sessionID,
			}
			continue
		}

		reply, intent := c.responder.Exchange(ctx, string(payload))

		c.send <- Frame{
			Type:      FrameTypeMessage,
			Content:   reply,
			Intent:    intent,
			SessionID: c.sessionID,
		}
	}
}

// writePump serializes all writes to the connection and keeps it alive with
// periodic pings.
func (c *client) writePump() {
	ticker := time.NewTicker(c.h.pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.h.writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(frame); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.h.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
