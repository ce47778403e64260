package tui

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/registry"
)

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "no-such-game"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	_, err := NewSSHServer(cfg)
	if !errors.Is(err, registry.ErrUnknownGame) {
		t.Errorf("NewSSHServer() error = %v, expected %v", err, registry.ErrUnknownGame)
	}
}

func TestNewSSHServerAddr(t *testing.T) {
	const id = "rec-ssh"
	if !registry.Exists(id) {
		registry.Register(id, func() registry.Game { return &recordingGame{} })
	}

	dir := filepath.Join(t.TempDir(), "keys")
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.GameID = id
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	if got := srv.Addr(); got != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", got, cfg.Address)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("host key directory: %v", err)
	}
}
