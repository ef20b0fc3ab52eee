package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	pkgLog "chatterbox/pkg/log"
)

type Middleware struct {
	l          pkgLog.Logger
	ratePerMin int
	limiters   *lru.Cache[string, *rate.Limiter]
}

// New creates the middleware bag. ratePerMin <= 0 disables rate limiting.
func New(l pkgLog.Logger, ratePerMin int) (Middleware, error) {
	// Bounded per-client limiter cache; abandoned clients age out.
	limiters, err := lru.New[string, *rate.Limiter](1024)
	if err != nil {
		return Middleware{}, err
	}

	return Middleware{
		l:          l,
		ratePerMin: ratePerMin,
		limiters:   limiters,
	}, nil
}
