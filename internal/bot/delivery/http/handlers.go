package http

import (
	"github.com/gin-gonic/gin"

	"chatterbox/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Runs the message through the intent engine and returns the bot's reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "Message payload"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request - empty or oversized message"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/message [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sessionID, responder, err := h.sessions.GetOrCreate(ctx, req.SessionID)
	if err != nil {
		h.l.Errorf(ctx, "chat handler: session create failed: %v", err)
		response.InternalError(c, err)
		return
	}

	reply, intent := responder.Exchange(ctx, req.Message)

	response.OK(c, h.newSendMessageResp(sessionID, reply, intent))
}

// History godoc
// @Summary     Get conversation history
// @Description Returns all logged turns for a session, oldest first.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       session_id query string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found - unknown session"
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Query("session_id")
	if sessionID == "" {
		response.Error(c, errSessionIDRequired, nil)
		return
	}

	responder, ok := h.sessions.Get(ctx, sessionID)
	if !ok {
		response.NotFound(c, errSessionNotFound)
		return
	}

	response.OK(c, h.newHistoryResp(sessionID, responder.History(ctx)))
}

// ClearHistory godoc
// @Summary     Clear conversation history
// @Description Resets a session's history and last intent, as if freshly started.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       session_id query string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found - unknown session"
// @Router      /api/v1/chat/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Query("session_id")
	if sessionID == "" {
		response.Error(c, errSessionIDRequired, nil)
		return
	}

	responder, ok := h.sessions.Get(ctx, sessionID)
	if !ok {
		response.NotFound(c, errSessionNotFound)
		return
	}

	responder.ClearContext(ctx)
	response.OK(c, nil)
}
