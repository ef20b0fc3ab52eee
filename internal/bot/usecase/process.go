package usecase

import (
	"context"
	"strings"

	"chatterbox/internal/bot"
)

// Process maps a user message to a reply. Serialized with a mutex: the reply
// itself never depends on concurrent calls, but the history append does.
func (r *implResponder) Process(ctx context.Context, input string) string {
	reply, _ := r.Exchange(ctx, input)
	return reply
}

// Exchange returns the reply together with the intent that produced it.
// Both come out of one critical section, so the pair is always consistent
// even when the responder is shared across connections.
func (r *implResponder) Exchange(ctx context.Context, input string) (string, string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trimmed := strings.TrimSpace(input)

	intent, reply := r.classify(trimmed)

	now := r.now()
	r.history = append(r.history,
		bot.ConversationTurn{Role: bot.RoleUser, Content: input, Intent: intent, Timestamp: now},
		bot.ConversationTurn{Role: bot.RoleAssistant, Content: reply, Intent: intent, Timestamp: now},
	)
	r.lastIntent = intent

	r.l.Debugf(ctx, "bot: classified message as %q", intent)
	return reply, intent
}

// classify runs the primary rule scan, then the keyword fallback.
// Caller holds the mutex.
func (r *implResponder) classify(trimmed string) (intent, reply string) {
	if trimmed == "" {
		return "", bot.WelcomeResponse
	}

	for _, rule := range r.rules {
		for _, p := range rule.Patterns {
			if p.MatchString(trimmed) {
				// Which pattern hit doesn't matter, only that one did.
				return rule.Name, rule.Responses[r.rng.Intn(len(rule.Responses))]
			}
		}
	}

	return bot.IntentFallback, r.fallback(trimmed)
}
