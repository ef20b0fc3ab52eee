package bot

import (
	"regexp"
	"time"
)

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IntentFallback is the sentinel recorded as lastIntent when no rule matched
// and the keyword-bucket heuristic produced the reply.
const IntentFallback = "fallback"

// IntentRule maps one named intent to its match patterns and candidate replies.
// Rules are evaluated in declaration order; the first rule with any matching
// pattern wins.
type IntentRule struct {
	Name      string           // Unique intent name (e.g. "greeting", "deploy")
	Patterns  []*regexp.Regexp // Case-insensitive matchers, tested in order
	Responses []string         // Candidate reply templates, one picked at random
}

// ConversationTurn is one logged user or assistant message.
// Immutable once appended to a responder's history.
type ConversationTurn struct {
	Role      Role
	Content   string
	Intent    string // Matched intent name, IntentFallback, or "" for the welcome reply
	Timestamp time.Time
}
