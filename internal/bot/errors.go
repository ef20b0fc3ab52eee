package bot

import "errors"

// Domain-specific errors for the bot package. All of them are rule-table
// configuration errors surfaced at construction time; Process itself never fails.
var (
	ErrNoRules         = errors.New("intent rule table is empty")
	ErrNoPatterns      = errors.New("intent has no match patterns")
	ErrNoResponses     = errors.New("intent has no response templates")
	ErrDuplicateIntent = errors.New("duplicate intent name in rule table")
)
