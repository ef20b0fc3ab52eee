package usecase

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"chatterbox/internal/bot"
	pkgLog "chatterbox/pkg/log"
)

type implResponder struct {
	l     pkgLog.Logger
	rules []bot.IntentRule
	rng   *rand.Rand
	now   func() time.Time

	mu         sync.Mutex
	lastIntent string
	history    []bot.ConversationTurn
}

// Ensure implResponder implements the Responder interface.
var _ bot.Responder = (*implResponder)(nil)

// New creates a responder over the given rule table. The table is validated
// once here; a malformed table is the only failure mode of this domain.
// rng and now may be nil: production callers get a time-seeded source and the
// wall clock, tests inject fixed ones.
func New(l pkgLog.Logger, rules []bot.IntentRule, rng *rand.Rand, now func() time.Time) (*implResponder, error) {
	if err := validateRules(rules); err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}

	return &implResponder{
		l:     l,
		rules: rules,
		rng:   rng,
		now:   now,
	}, nil
}

func validateRules(rules []bot.IntentRule) error {
	if len(rules) == 0 {
		return bot.ErrNoRules
	}

	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if seen[r.Name] {
			return fmt.Errorf("%w: %q", bot.ErrDuplicateIntent, r.Name)
		}
		seen[r.Name] = true

		if len(r.Patterns) == 0 {
			return fmt.Errorf("%w: %q", bot.ErrNoPatterns, r.Name)
		}
		if len(r.Responses) == 0 {
			return fmt.Errorf("%w: %q", bot.ErrNoResponses, r.Name)
		}
	}
	return nil
}
