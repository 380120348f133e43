package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
theme:
  snake: "#00ff00"
  food: "196"
server:
  address: ":2222"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Theme.Snake != "#00ff00" {
		t.Errorf("Theme.Snake = %q, expected #00ff00", cfg.Theme.Snake)
	}
	if cfg.Theme.Food != "196" {
		t.Errorf("Theme.Food = %q, expected 196", cfg.Theme.Food)
	}
	if cfg.Server.Address != ":2222" {
		t.Errorf("Server.Address = %q, expected :2222", cfg.Server.Address)
	}

	// Unset fields keep their defaults
	def := Default()
	if cfg.Theme.Text != def.Theme.Text {
		t.Errorf("Theme.Text = %q, expected default %q", cfg.Theme.Text, def.Theme.Text)
	}
	if cfg.Server.IdleTimeoutMinutes != def.Server.IdleTimeoutMinutes {
		t.Errorf("IdleTimeoutMinutes = %d, expected default %d",
			cfg.Server.IdleTimeoutMinutes, def.Server.IdleTimeoutMinutes)
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load should fail for a missing explicit path")
	}
}

func TestLoadMalformedExplicitPathFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("Load should fail for a malformed explicit path")
	}
}

func TestDefaultServer(t *testing.T) {
	cfg := Default()

	if cfg.Server.Address == "" {
		t.Error("Default server address should not be empty")
	}
	if cfg.Server.IdleTimeout() <= 0 {
		t.Error("Default idle timeout should be positive")
	}
}
