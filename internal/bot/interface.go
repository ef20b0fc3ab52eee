package bot

import "context"

// Responder defines the business logic interface for the bot domain.
// One Responder owns one conversation: its rule table is fixed for the
// instance's life, and its history/lastIntent are scoped to it.
type Responder interface {
	// Process maps a free-text message to a reply. It never fails: empty input
	// yields the fixed welcome reply, unmatched input goes through the keyword
	// fallback. Every call appends one user and one assistant turn to history.
	Process(ctx context.Context, input string) string

	// Exchange is Process plus the intent that produced the reply, read in
	// the same critical section. Transports that report the intent must use
	// this instead of Process followed by LastIntent, which can observe a
	// concurrent call's intent.
	Exchange(ctx context.Context, input string) (reply, intent string)

	// History returns a snapshot copy of the conversation so far.
	History(ctx context.Context) []ConversationTurn

	// LastIntent returns the intent of the most recent Process call,
	// IntentFallback if the fallback fired, or "" before any call.
	LastIntent(ctx context.Context) string

	// ClearContext resets history and lastIntent to the freshly-constructed state.
	ClearContext(ctx context.Context)
}
