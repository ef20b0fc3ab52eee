package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig
	Chat        ChatConfig
	WebSocket   WebSocketConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ChatConfig tunes the chat domain.
type ChatConfig struct {
	MaxMessageLen    int // Transport-level cap; the engine itself tolerates any size
	SessionCacheSize int // Max live conversations before LRU eviction
	RateLimitPerMin  int // Per-client budget on the message endpoint; 0 disables
}

type WebSocketConfig struct {
	ReadLimit   int64 // Max inbound frame size in bytes
	PingPeriodS int   // Server ping interval in seconds
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Chat.MaxMessageLen = viper.GetInt("chat.max_message_len")
	cfg.Chat.SessionCacheSize = viper.GetInt("chat.session_cache_size")
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	cfg.WebSocket.ReadLimit = viper.GetInt64("websocket.read_limit")
	cfg.WebSocket.PingPeriodS = viper.GetInt("websocket.ping_period_s")

	if cfg.Chat.SessionCacheSize <= 0 {
		return nil, fmt.Errorf("chat.session_cache_size must be positive")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("chat.max_message_len", 10000)
	viper.SetDefault("chat.session_cache_size", 1024)
	viper.SetDefault("chat.rate_limit_per_min", 60)
	viper.SetDefault("websocket.read_limit", 16384)
	viper.SetDefault("websocket.ping_period_s", 30)
}
