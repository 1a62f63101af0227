package server

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Environment variables read by ConfigFromEnv.
const (
	// EnvPort is the listen port set by Heroku-style platforms.
	EnvPort = "PORT"

	// EnvAddr overrides the full listen address, e.g. "127.0.0.1:8080".
	EnvAddr = "PIXEL_CLOCK_ADDR"

	// EnvLogLevel enables per-request logging when set to "debug".
	EnvLogLevel = "PIXEL_CLOCK_LOG_LEVEL"
)

// DefaultPort is used when neither EnvAddr nor EnvPort is set.
const DefaultPort = 5050

// Config holds the settings of the HTTP layer. It is built once at startup
// and passed to New; handlers never read the environment themselves.
type Config struct {
	// Addr is the TCP address to listen on.
	Addr string

	// Debug enables per-request logging.
	Debug bool

	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout time.Duration

	// WriteTimeout bounds the time spent writing a response.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds how long Run waits for in-flight requests.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the configuration used when no environment
// variables are set.
func DefaultConfig() Config {
	return Config{
		Addr:              ":" + strconv.Itoa(DefaultPort),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables looked up with
// getenv (usually os.Getenv).
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if port := getenv(EnvPort); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return Config{}, fmt.Errorf("invalid %s %q", EnvPort, port)
		}
		cfg.Addr = ":" + port
	}

	if addr := getenv(EnvAddr); addr != "" {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvAddr, addr, err)
		}
		cfg.Addr = addr
	}

	cfg.Debug = getenv(EnvLogLevel) == "debug"
	return cfg, nil
}
