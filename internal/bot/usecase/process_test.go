package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"chatterbox/internal/bot"
	"chatterbox/internal/bot/usecase"
)

func newDefaultResponder(t *testing.T) bot.Responder {
	t.Helper()
	r, err := usecase.New(&mockLogger{}, bot.DefaultRules(), rand.New(rand.NewSource(42)), tickingClock())
	if err != nil {
		t.Fatalf("unexpected constructor error: %v", err)
	}
	return r
}

func responseSet(rules []bot.IntentRule, name string) map[string]bool {
	set := make(map[string]bool)
	for _, r := range rules {
		if r.Name == name {
			for _, resp := range r.Responses {
				set[resp] = true
			}
		}
	}
	return set
}

func TestNewValidation(t *testing.T) {
	t.Run("Empty Rule Table", func(t *testing.T) {
		_, err := usecase.New(&mockLogger{}, nil, nil, nil)
		if !errors.Is(err, bot.ErrNoRules) {
			t.Errorf("expected ErrNoRules, got %v", err)
		}
	})

	t.Run("Intent Without Responses", func(t *testing.T) {
		rules := []bot.IntentRule{
			{Name: "broken", Patterns: []*regexp.Regexp{mustPattern(`x`)}},
		}
		_, err := usecase.New(&mockLogger{}, rules, nil, nil)
		if !errors.Is(err, bot.ErrNoResponses) {
			t.Errorf("expected ErrNoResponses, got %v", err)
		}
	})

	t.Run("Intent Without Patterns", func(t *testing.T) {
		rules := []bot.IntentRule{
			{Name: "broken", Responses: []string{"reply"}},
		}
		_, err := usecase.New(&mockLogger{}, rules, nil, nil)
		if !errors.Is(err, bot.ErrNoPatterns) {
			t.Errorf("expected ErrNoPatterns, got %v", err)
		}
	})

	t.Run("Duplicate Intent Name", func(t *testing.T) {
		rules := []bot.IntentRule{
			{Name: "dup", Patterns: []*regexp.Regexp{mustPattern(`a`)}, Responses: []string{"r"}},
			{Name: "dup", Patterns: []*regexp.Regexp{mustPattern(`b`)}, Responses: []string{"r"}},
		}
		_, err := usecase.New(&mockLogger{}, rules, nil, nil)
		if !errors.Is(err, bot.ErrDuplicateIntent) {
			t.Errorf("expected ErrDuplicateIntent, got %v", err)
		}
	})

	t.Run("Default Table Is Valid", func(t *testing.T) {
		if _, err := usecase.New(&mockLogger{}, bot.DefaultRules(), nil, nil); err != nil {
			t.Errorf("default rules must validate, got %v", err)
		}
	})
}

func TestProcessTotality(t *testing.T) {
	r := newDefaultResponder(t)
	ctx := context.Background()

	inputs := []string{
		"",
		"   \t\n  ",
		"hello",
		strings.Repeat("deploy ", 5000),
		"🤖🔥 emoji soup ☕️",
		"héllo wörld — ünïcode",
		"hello, can you help me deploy docker to mobile?", // matches several intents' patterns
		"asdkjalksdj",
	}

	for _, in := range inputs {
		out := r.Process(ctx, in)
		if out == "" {
			t.Errorf("Process(%q) returned empty string", in)
		}
	}
}

func TestProcessWelcome(t *testing.T) {
	r := newDefaultResponder(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if out := r.Process(ctx, ""); out != bot.WelcomeResponse {
			t.Fatalf("empty input must always yield the fixed welcome reply, got %q", out)
		}
	}
	if out := r.Process(ctx, "   "); out != bot.WelcomeResponse {
		t.Errorf("whitespace-only input must yield the welcome reply, got %q", out)
	}
}

func TestProcessGreetingScenario(t *testing.T) {
	r := newDefaultResponder(t)
	ctx := context.Background()

	valid := responseSet(bot.DefaultRules(), "greeting")
	for i := 0; i < 50; i++ {
		out := r.Process(ctx, "hello")
		if !valid[out] {
			t.Fatalf("reply %q is not in the greeting response set", out)
		}
	}
	if got := r.LastIntent(ctx); got != "greeting" {
		t.Errorf("lastIntent = %q, want %q", got, "greeting")
	}
}

func TestProcessDeployScenario(t *testing.T) {
	r := newDefaultResponder(t)
	ctx := context.Background()

	valid := responseSet(bot.DefaultRules(), "deploy")
	for i := 0; i < 50; i++ {
		out := r.Process(ctx, "deploy with docker")
		if !valid[out] {
			t.Fatalf("reply %q is not in the deploy response set", out)
		}
		if !strings.Contains(out, "Docker") {
			t.Fatalf("deploy reply must mention Docker, got %q", out)
		}
	}
}

func TestPriorityTieBreak(t *testing.T) {
	rules := []bot.IntentRule{
		{
			Name:      "first",
			Patterns:  []*regexp.Regexp{mustPattern(`(?i)overlap`)},
			Responses: []string{"first wins"},
		},
		{
			Name:      "second",
			Patterns:  []*regexp.Regexp{mustPattern(`(?i)overlap`), mustPattern(`(?i)anything`)},
			Responses: []string{"second wins"},
		},
	}
	r, err := usecase.New(&mockLogger{}, rules, rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatalf("unexpected constructor error: %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 100; i++ {
		if out := r.Process(ctx, "this has overlap in it"); out != "first wins" {
			t.Fatalf("earlier-declared intent must win the tie, got %q", out)
		}
	}
	if got := r.LastIntent(ctx); got != "first" {
		t.Errorf("lastIntent = %q, want %q", got, "first")
	}
}

func TestHistoryInvariant(t *testing.T) {
	r := newDefaultResponder(t)
	ctx := context.Background()

	inputs := []string{"hello", "deploy with docker", "asdkjalksdj", "", "help me"}
	for _, in := range inputs {
		r.Process(ctx, in)
	}

	turns := r.History(ctx)
	if len(turns) != 2*len(inputs) {
		t.Fatalf("history length = %d, want %d", len(turns), 2*len(inputs))
	}

	for i, turn := range turns {
		wantRole := bot.RoleUser
		if i%2 == 1 {
			wantRole = bot.RoleAssistant
		}
		if turn.Role != wantRole {
			t.Errorf("turn %d role = %q, want %q", i, turn.Role, wantRole)
		}
		if i > 0 && turn.Timestamp.Before(turns[i-1].Timestamp) {
			t.Errorf("turn %d timestamp decreased", i)
		}
	}

	// User turns must carry the original input verbatim.
	if turns[0].Content != "hello" {
		t.Errorf("first user turn content = %q, want %q", turns[0].Content, "hello")
	}
}

func TestHistorySnapshotIsolation(t *testing.T) {
	r := newDefaultResponder(t)
	ctx := context.Background()

	r.Process(ctx, "hello")
	snapshot := r.History(ctx)
	snapshot[0].Content = "mutated"

	if got := r.History(ctx)[0].Content; got != "hello" {
		t.Errorf("external mutation leaked into the responder's history: %q", got)
	}
}

func TestClearContext(t *testing.T) {
	r := newDefaultResponder(t)
	ctx := context.Background()

	r.Process(ctx, "hello")
	r.Process(ctx, "deploy now")
	r.ClearContext(ctx)

	if turns := r.History(ctx); len(turns) != 0 {
		t.Errorf("history after clear = %d turns, want 0", len(turns))
	}
	if got := r.LastIntent(ctx); got != "" {
		t.Errorf("lastIntent after clear = %q, want empty", got)
	}

	// Behaves like a fresh instance afterwards.
	valid := responseSet(bot.DefaultRules(), "greeting")
	if out := r.Process(ctx, "hello"); !valid[out] {
		t.Errorf("post-clear reply %q not in greeting set", out)
	}
	if turns := r.History(ctx); len(turns) != 2 {
		t.Errorf("history after clear+1 call = %d turns, want 2", len(turns))
	}
}

func TestExchangeIntentMatchesReply(t *testing.T) {
	r := newDefaultResponder(t)
	ctx := context.Background()

	greetings := responseSet(bot.DefaultRules(), "greeting")
	deploys := responseSet(bot.DefaultRules(), "deploy")

	// Two intents interleaved on one shared responder: the (reply, intent)
	// pair must stay consistent even when another call lands in between and
	// overwrites lastIntent.
	const goroutines = 8
	const callsEach = 50

	errCh := make(chan error, goroutines)
	for g := 0; g < goroutines; g++ {
		input, wantIntent, wantSet := "hello", "greeting", greetings
		if g%2 == 1 {
			input, wantIntent, wantSet = "deploy with docker", "deploy", deploys
		}
		go func() {
			for i := 0; i < callsEach; i++ {
				reply, intent := r.Exchange(ctx, input)
				if intent != wantIntent {
					errCh <- fmt.Errorf("intent = %q, want %q", intent, wantIntent)
					return
				}
				if !wantSet[reply] {
					errCh <- fmt.Errorf("reply %q not in %s response set", reply, wantIntent)
					return
				}
			}
			errCh <- nil
		}()
	}
	for g := 0; g < goroutines; g++ {
		if err := <-errCh; err != nil {
			t.Error(err)
		}
	}
}

func TestProcessConcurrent(t *testing.T) {
	r := newDefaultResponder(t)
	ctx := context.Background()

	const goroutines = 16
	const callsEach = 25

	done := make(chan struct{})
	for g := 0; g < goroutines; g++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < callsEach; i++ {
				r.Process(ctx, "hello")
			}
		}()
	}
	for g := 0; g < goroutines; g++ {
		<-done
	}

	if turns := r.History(ctx); len(turns) != 2*goroutines*callsEach {
		t.Errorf("history length = %d, want %d (lost or duplicated entries)", len(turns), 2*goroutines*callsEach)
	}
}
