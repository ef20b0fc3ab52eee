package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatterbox/config"
	_ "chatterbox/docs" // Swagger docs
	"chatterbox/internal/bot"
	chatHTTP "chatterbox/internal/bot/delivery/http"
	chatWS "chatterbox/internal/bot/delivery/ws"
	"chatterbox/internal/bot/usecase"
	"chatterbox/internal/httpserver"
	"chatterbox/internal/middleware"
	"chatterbox/internal/session"
	"chatterbox/pkg/log"
)

// @title       Chatterbox API
// @description Pattern-matching demo chatbot over HTTP and WebSocket.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Chatterbox...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Chat domain
	rules := bot.DefaultRules()

	// The rule table is validated once up front so a malformed table fails
	// the process at startup, not on the first message.
	if _, err := usecase.New(logger, rules, nil, nil); err != nil {
		logger.Errorf(ctx, "Invalid intent rule table: %v", err)
		return
	}

	sessions, err := session.New(logger, cfg.Chat.SessionCacheSize, func() (bot.Responder, error) {
		return usecase.New(logger, rules, nil, nil)
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create session store: %v", err)
		return
	}

	mw, err := middleware.New(logger, cfg.Chat.RateLimitPerMin)
	if err != nil {
		logger.Errorf(ctx, "Failed to create middleware: %v", err)
		return
	}

	chatHandler := chatHTTP.New(logger, sessions, cfg.Chat.MaxMessageLen)
	wsHandler := chatWS.New(logger, sessions, chatWS.Config{
		ReadLimit:  cfg.WebSocket.ReadLimit,
		PingPeriod: time.Duration(cfg.WebSocket.PingPeriodS) * time.Second,
	})

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatHandler: chatHandler,
		WSHandler:   wsHandler,
		Middleware:  mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
