package usecase

import (
	"context"

	"chatterbox/internal/bot"
)

// History returns a snapshot copy. A copy, not the live slice: the caller
// must never be able to mutate the responder's log.
func (r *implResponder) History(ctx context.Context) []bot.ConversationTurn {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bot.ConversationTurn, len(r.history))
	copy(out, r.history)
	return out
}

// LastIntent returns the intent recorded by the most recent Process call.
func (r *implResponder) LastIntent(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastIntent
}

// ClearContext resets the responder to its freshly-constructed state.
func (r *implResponder) ClearContext(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history = nil
	r.lastIntent = ""
	r.l.Debugf(ctx, "bot: conversation context cleared")
}
