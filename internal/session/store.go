package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"chatterbox/internal/bot"
	pkgLog "chatterbox/pkg/log"
)

// Factory builds a fresh responder for a new conversation.
type Factory func() (bot.Responder, error)

// Store maps session IDs to per-conversation responders. Backed by an LRU so
// idle conversations are evicted instead of growing without bound; eviction
// loses only that conversation's in-memory log, which is the documented
// lifecycle (nothing is persisted).
type Store struct {
	l       pkgLog.Logger
	cache   *lru.Cache[string, bot.Responder]
	factory Factory

	// Serializes get-then-add so concurrent requests for the same new ID
	// can't mint two responders for one conversation.
	mu sync.Mutex
}

// New creates a session store holding at most size conversations.
func New(l pkgLog.Logger, size int, factory Factory) (*Store, error) {
	if l == nil {
		return nil, errors.New("logger is required")
	}
	if factory == nil {
		return nil, errors.New("responder factory is required")
	}

	cache, err := lru.New[string, bot.Responder](size)
	if err != nil {
		return nil, err
	}

	return &Store{
		l:       l,
		cache:   cache,
		factory: factory,
	}, nil
}

// GetOrCreate returns the responder for id, minting a new session (and a new
// uuid when id is empty) if none exists yet.
func (s *Store) GetOrCreate(ctx context.Context, id string) (string, bot.Responder, error) {
	if id == "" {
		id = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.cache.Get(id); ok {
		return id, r, nil
	}

	r, err := s.factory()
	if err != nil {
		return "", nil, err
	}

	if evicted := s.cache.Add(id, r); evicted {
		s.l.Debugf(ctx, "session: evicted least-recently-used conversation")
	}
	s.l.Infof(ctx, "session: created conversation %s", id)

	return id, r, nil
}

// Get returns the responder for an existing session, if any.
func (s *Store) Get(ctx context.Context, id string) (bot.Responder, bool) {
	return s.cache.Get(id)
}

// Len reports the number of live conversations.
func (s *Store) Len() int {
	return s.cache.Len()
}
