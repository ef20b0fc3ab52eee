package ws

// Frame is the JSON payload exchanged over the chat socket. Inbound frames
// are plain text; outbound frames use this envelope.
type Frame struct {
	Type      string `json:"type"`
	Content   string `json:"content,omitempty"`
	Intent    string `json:"intent,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// Outbound frame types.
const (
	FrameTypeWelcome = "welcome"
	FrameTypeMessage = "message"
	FrameTypeError   = "error"
)
