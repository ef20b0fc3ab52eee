package http

import (
	"github.com/gin-gonic/gin"
)

// processSendMessageReq binds and validates the chat message request body.
// The engine tolerates any string; size and presence checks live here at the
// transport boundary so pathological payloads never reach it.
func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMessageRequired
	}
	return req, req.validate(h.maxMsgLen)
}
