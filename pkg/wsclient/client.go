package wsclient

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	pkgLog "chatterbox/pkg/log"
)

// Config tunes the connection and its reconnect backoff.
type Config struct {
	URL string

	// Backoff between reconnect attempts: BaseDelay grows by Multiplier up
	// to MaxDelay. MaxAttempts 0 means retry forever.
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Multiplier  float64
	MaxAttempts int

	HandshakeTimeout time.Duration
}

// Client is a websocket client that re-dials with exponential backoff when
// the connection drops. Outbound text goes through Send, inbound frames
// arrive on Messages.
type Client struct {
	l   pkgLog.Logger
	cfg Config

	outbound chan []byte
	inbound  chan []byte

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

var ErrClosed = errors.New("wsclient: client is closed")

// New validates the config and returns an unconnected client; Run dials.
func New(l pkgLog.Logger, cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("wsclient: url is required")
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = 500 * time.Millisecond
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 30 * time.Second
	}
	if cfg.Multiplier < 1 {
		cfg.Multiplier = 2
	}
	if cfg.HandshakeTimeout <= 0 {
		cfg.HandshakeTimeout = 10 * time.Second
	}

	return &Client{
		l:        l,
		cfg:      cfg,
		outbound: make(chan []byte, 64),
		inbound:  make(chan []byte, 64),
		done:     make(chan struct{}),
	}, nil
}

// Run maintains the connection until ctx is cancelled, the client is closed,
// or the attempt budget runs out. Blocks; run it on its own goroutine.
func (c *Client) Run(ctx context.Context) error {
	attempts := 0
	delay := c.cfg.BaseDelay

	for {
		conn, err := c.dial(ctx)
		if err == nil {
			attempts = 0
			delay = c.cfg.BaseDelay
			err = c.pump(ctx, conn)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.done:
			return nil
		default:
		}

		attempts++
		if c.cfg.MaxAttempts > 0 && attempts >= c.cfg.MaxAttempts {
			c.l.Errorf(ctx, "wsclient: giving up after %d attempts: %v", attempts, err)
			return err
		}

		c.l.Warnf(ctx, "wsclient: connection lost (%v), reconnecting in %s", err, delay)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		case <-c.done:
			return nil
		}
		delay = nextDelay(delay, c.cfg.Multiplier, c.cfg.MaxDelay)
	}
}

// Send queues one outbound text frame.
func (c *Client) Send(payload []byte) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}

	select {
	case c.outbound <- payload:
		return nil
	case <-c.done:
		return ErrClosed
	}
}

// Messages is the stream of inbound frames.
func (c *Client) Messages() <-chan []byte {
	return c.inbound
}

// Close stops the run loop and rejects further sends.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.done)
}

func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	dialer := websocket.Dialer{HandshakeTimeout: c.cfg.HandshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, c.cfg.URL, nil)
	if err != nil {
		return nil, err
	}
	c.l.Infof(ctx, "wsclient: connected to %s", c.cfg.URL)
	return conn, nil
}

// pump shuttles frames both ways until the connection errors out.
func (c *Client) pump(ctx context.Context, conn *websocket.Conn) error {
	defer conn.Close()

	readErr := make(chan error, 1)
	go func() {
		for {
			_, payload, err := conn.ReadMessage()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case c.inbound <- payload:
			case <-c.done:
				return
			}
		}
	}()

	for {
		select {
		case payload := <-c.outbound:
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return err
			}
		case err := <-readErr:
			return err
		case <-ctx.Done():
			return ctx.Err()
		case <-c.done:
			return nil
		}
	}
}

// nextDelay is the backoff step: delay *= multiplier, capped at max.
func nextDelay(delay time.Duration, multiplier float64, max time.Duration) time.Duration {
	next := time.Duration(float64(delay) * multiplier)
	if next > max {
		return max
	}
	return next
}
