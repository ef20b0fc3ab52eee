package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"chatterbox/internal/middleware"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Allows Within Budget", func(t *testing.T) {
		mw, err := middleware.New(&mockLogger{}, 60)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		r := gin.New()
		r.GET("/x", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("Rejects Beyond Burst", func(t *testing.T) {
		mw, err := middleware.New(&mockLogger{}, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		r := gin.New()
		r.GET("/x", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		var last int
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
			last = w.Code
		}
		if last != http.StatusTooManyRequests {
			t.Errorf("status after burst = %d, want 429", last)
		}
	})

	t.Run("Disabled When Zero", func(t *testing.T) {
		mw, err := middleware.New(&mockLogger{}, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		r := gin.New()
		r.GET("/x", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 20; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d status = %d, want 200", i, w.Code)
			}
		}
	})
}
