package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lspcore.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Pools.RequestThreads != 5 || cfg.Pools.WorkerThreads != 5 {
		t.Errorf("pool defaults = %+v", cfg.Pools)
	}
	if cfg.Queues.InboundCapacity != 64 {
		t.Errorf("inbound capacity = %d, want 64", cfg.Queues.InboundCapacity)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Name != "lspcore" {
		t.Errorf("name = %q", cfg.Server.Name)
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
name = "myls"
trace = "verbose"

[pools]
request_threads = 8

[log]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Name != "myls" {
		t.Errorf("name = %q", cfg.Server.Name)
	}
	if cfg.Pools.RequestThreads != 8 {
		t.Errorf("request_threads = %d, want 8", cfg.Pools.RequestThreads)
	}
	// Unset keys keep defaults.
	if cfg.Pools.WorkerThreads != 5 {
		t.Errorf("worker_threads = %d, want default 5", cfg.Pools.WorkerThreads)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero request threads", "[pools]\nrequest_threads = 0\n"},
		{"bad trace", `[server]` + "\n" + `trace = "deep"` + "\n"},
		{"bad level", `[log]` + "\n" + `level = "loud"` + "\n"},
		{"bad format", `[log]` + "\n" + `format = "xml"` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeConfig(t, `[server`+"\n")
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed TOML")
	}
}
