package http

import (
	"chatterbox/internal/bot"
	"chatterbox/pkg/response"
)

// --- Request DTOs ---

type sendMessageReq struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

func (r sendMessageReq) validate(maxLen int) error {
	if r.Message == "" {
		return errMessageRequired
	}
	if maxLen > 0 && len(r.Message) > maxLen {
		return errMessageTooLong
	}
	return nil
}

// --- Response DTOs ---

type sendMessageResp struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Intent    string `json:"intent,omitempty"`
}

func (h *handler) newSendMessageResp(sessionID, reply, intent string) sendMessageResp {
	return sendMessageResp{
		SessionID: sessionID,
		Reply:     reply,
		Intent:    intent,
	}
}

type turnItem struct {
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	Intent    string            `json:"intent,omitempty"`
	Timestamp response.DateTime `json:"timestamp"`
}

type historyResp struct {
	SessionID string     `json:"session_id"`
	Turns     []turnItem `json:"turns"`
	Count     int        `json:"count"`
}

func (h *handler) newHistoryResp(sessionID string, turns []bot.ConversationTurn) historyResp {
	items := make([]turnItem, 0, len(turns))
	for _, t := range turns {
		items = append(items, turnItem{
			Role:      string(t.Role),
			Content:   t.Content,
			Intent:    t.Intent,
			Timestamp: response.DateTime(t.Timestamp),
		})
	}

	return historyResp{
		SessionID: sessionID,
		Turns:     items,
		Count:     len(items),
	}
}
