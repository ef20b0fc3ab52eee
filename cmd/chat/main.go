package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/glamour"

	chatWS "chatterbox/internal/bot/delivery/ws"
	"chatterbox/pkg/log"
	"chatterbox/pkg/wsclient"
)

// Terminal chat client: connects to the server's chat socket, sends stdin
// lines as messages, and renders the bot's markdown replies. Reconnects
// with exponential backoff when the server drops the connection.
func main() {
	var serverURL string
	flag.StringVar(&serverURL, "url", "ws://localhost:8080/ws/chat", "chat socket URL")
	flag.Parse()

	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     "debug",
		Encoding: "console",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := wsclient.New(logger, wsclient.Config{
		URL:        serverURL,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   15 * time.Second,
		Multiplier: 2,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create client:", err)
		os.Exit(1)
	}
	defer client.Close()

	go client.Run(ctx)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create renderer:", err)
		os.Exit(1)
	}

	// Print replies as they arrive.
	go func() {
		for payload := range client.Messages() {
			var frame chatWS.Frame
			if err := json.Unmarshal(payload, &frame); err != nil {
				fmt.Println(string(payload))
				continue
			}
			printFrame(renderer, frame)
		}
	}()

	fmt.Println("Connected to", serverURL, "— type a message, Ctrl+C to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := client.Send([]byte(line)); err != nil {
			fmt.Fprintln(os.Stderr, "send failed:", err)
			return
		}

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

func printFrame(renderer *glamour.TermRenderer, frame chatWS.Frame) {
	rendered, err := renderer.Render(frame.Content)
	if err != nil {
		rendered = frame.Content
	}
	if frame.Intent != "" {
		fmt.Printf("[%s]%s\n", frame.Intent, rendered)
		return
	}
	fmt.Println(rendered)
}
