package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/lspcore/internal/protocol"
)

// Config is the full server configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Pools  PoolConfig   `toml:"pools"`
	Queues QueueConfig  `toml:"queues"`
	Log    LogConfig    `toml:"log"`
	Script ScriptConfig `toml:"script"`
}

// ServerConfig identifies the server and its trace default.
type ServerConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Trace   string `toml:"trace"`
}

// PoolConfig sizes the two worker pools. The request pool handles LSP
// messages end to end; the worker pool is for handler background tasks.
type PoolConfig struct {
	RequestThreads int `toml:"request_threads"`
	WorkerThreads  int `toml:"worker_threads"`
}

// QueueConfig bounds the message queues.
type QueueConfig struct {
	InboundCapacity  int `toml:"inbound_capacity"`
	OutboundCapacity int `toml:"outbound_capacity"`
}

// LogConfig controls the slog root logger.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text or json
	File   string `toml:"file"`   // empty logs to stderr
}

// ScriptConfig enables the Lua handler layer.
type ScriptConfig struct {
	Enabled bool     `toml:"enabled"`
	Paths   []string `toml:"paths"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Name:    "lspcore",
			Version: "0.1.0",
			Trace:   string(protocol.TraceOff),
		},
		Pools: PoolConfig{
			RequestThreads: 5,
			WorkerThreads:  5,
		},
		Queues: QueueConfig{
			InboundCapacity:  64,
			OutboundCapacity: 64,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path and merges it over the defaults. A missing file is not
// an error; a malformed or invalid file is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if c.Pools.RequestThreads < 1 {
		return fmt.Errorf("%w: pools.request_threads must be at least 1", ErrInvalidConfig)
	}
	if c.Pools.WorkerThreads < 1 {
		return fmt.Errorf("%w: pools.worker_threads must be at least 1", ErrInvalidConfig)
	}
	if c.Queues.InboundCapacity < 1 || c.Queues.OutboundCapacity < 1 {
		return fmt.Errorf("%w: queue capacities must be at least 1", ErrInvalidConfig)
	}
	if _, err := protocol.ParseTraceValues(c.Server.Trace); err != nil {
		return fmt.Errorf("%w: server.trace %q", ErrInvalidConfig, c.Server.Trace)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// TraceValue returns the configured trace default.
func (c Config) TraceValue() protocol.TraceValues {
	v, err := protocol.ParseTraceValues(c.Server.Trace)
	if err != nil {
		return protocol.TraceOff
	}
	return v
}
