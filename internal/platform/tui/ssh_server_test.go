package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected :23234", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 30m", cfg.IdleTimeout)
	}
	if err := cfg.Game.Validate(); err != nil {
		t.Errorf("Default game config should be valid: %v", err)
	}
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "runs.db")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q, expected the configured address", srv.Addr())
	}
	if srv.store == nil {
		t.Error("Expected the runs database to be open")
	}
	if _, err := os.Stat(cfg.HostKeyPath); err != nil {
		t.Errorf("Expected a generated host key: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
	if srv.store != nil {
		t.Error("Shutdown should close the runs database")
	}
}

func TestNewSSHServerWithoutDatabase(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.DBPath = ""
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}
	defer srv.Shutdown()

	if srv.store != nil {
		t.Error("An empty DBPath should disable recording")
	}
}
