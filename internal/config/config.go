// Package config holds the game server's runtime settings.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the server settings. Each field can be set by a flag or by
// the matching VIBECHESS_* environment variable; flags win.
type Config struct {
	// Listen address, e.g. ":3000".
	Addr string

	// Origins allowed by CORS and by the websocket upgrader.
	AllowedOrigins []string

	// How often the matchmaking queue is polled for a pair.
	MatchmakingInterval time.Duration

	ReadBufferSize  int
	WriteBufferSize int
}

func NewConfig() *Config {
	return &Config{
		Addr:                ":3000",
		AllowedOrigins:      []string{"http://localhost:5173"},
		MatchmakingInterval: time.Second,
		ReadBufferSize:      1024,
		WriteBufferSize:     1024,
	}
}

// Load builds a Config from defaults, then the environment, then args.
func Load(args []string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := NewConfig()

	fs := flag.NewFlagSet("vibechess", flag.ContinueOnError)
	addr := fs.String("addr", envString(getenv, "VIBECHESS_ADDR", cfg.Addr), "listen address")
	origins := fs.String("origins", envString(getenv, "VIBECHESS_ORIGINS", strings.Join(cfg.AllowedOrigins, ",")), "comma-separated allowed origins")
	interval := fs.String("matchmaking-interval", envString(getenv, "VIBECHESS_MATCHMAKING_INTERVAL", cfg.MatchmakingInterval.String()), "matchmaking poll interval")
	readBuf := fs.String("ws-read-buffer", envString(getenv, "VIBECHESS_WS_READ_BUFFER", strconv.Itoa(cfg.ReadBufferSize)), "websocket read buffer size")
	writeBuf := fs.String("ws-write-buffer", envString(getenv, "VIBECHESS_WS_WRITE_BUFFER", strconv.Itoa(cfg.WriteBufferSize)), "websocket write buffer size")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg.Addr = strings.TrimSpace(*addr)
	cfg.AllowedOrigins = splitCSV(*origins)

	d, err := time.ParseDuration(*interval)
	if err != nil {
		return nil, fmt.Errorf("%w: matchmaking interval %q: %v", ErrInvalidConfig, *interval, err)
	}
	cfg.MatchmakingInterval = d

	if cfg.ReadBufferSize, err = strconv.Atoi(*readBuf); err != nil {
		return nil, fmt.Errorf("%w: read buffer %q: %v", ErrInvalidConfig, *readBuf, err)
	}
	if cfg.WriteBufferSize, err = strconv.Atoi(*writeBuf); err != nil {
		return nil, fmt.Errorf("%w: write buffer %q: %v", ErrInvalidConfig, *writeBuf, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("%w: no allowed origins", ErrInvalidConfig)
	}
	if c.MatchmakingInterval <= 0 {
		return fmt.Errorf("%w: matchmaking interval must be positive", ErrInvalidConfig)
	}
	if c.ReadBufferSize <= 0 || c.WriteBufferSize <= 0 {
		return fmt.Errorf("%w: websocket buffer sizes must be positive", ErrInvalidConfig)
	}
	return nil
}

func envString(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
