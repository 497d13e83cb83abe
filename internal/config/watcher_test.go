package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lspcore.toml")
	if err := os.WriteFile(path, []byte("[server]\nname = \"before\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w, err := NewWatcher(path, logger)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	got := make(chan Config, 1)
	w.Subscribe(func(cfg Config) {
		select {
		case got <- cfg:
		default:
		}
	})

	if err := os.WriteFile(path, []byte("[server]\nname = \"after\"\n"), 0o644); err != nil {
		t.Fatalf("rewrite error = %v", err)
	}

	select {
	case cfg := <-got:
		if cfg.Server.Name != "after" {
			t.Errorf("reloaded name = %q, want after", cfg.Server.Name)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload delivered")
	}
}

func TestWatcher_KeepsPreviousOnInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lspcore.toml")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w, err := NewWatcher(path, logger)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	delivered := make(chan Config, 4)
	w.Subscribe(func(cfg Config) { delivered <- cfg })

	// An invalid file must not reach subscribers.
	if err := os.WriteFile(path, []byte("[pools]\nrequest_threads = 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	select {
	case cfg := <-delivered:
		t.Errorf("invalid config delivered: %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}
