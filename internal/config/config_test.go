package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
player:
  name: Ana
  age: 65
  starting_balance: 250
sim:
  seed: 42
display:
  width: 1920
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Player.Name != "Ana" || cfg.Player.Age != 65 {
		t.Fatalf("player mismatch: %+v", cfg.Player)
	}
	if cfg.Player.StartingBalance != 250 {
		t.Fatalf("expected starting balance 250, got %v", cfg.Player.StartingBalance)
	}
	if cfg.Sim.Seed != 42 {
		t.Fatalf("expected seed 42, got %v", cfg.Sim.Seed)
	}
	if cfg.Display.Width != 1920 {
		t.Fatalf("expected width 1920, got %v", cfg.Display.Width)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "player:\n  name: Ben\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Player.Age != 18 || cfg.Player.BankBalance != 50000 {
		t.Fatalf("defaults not applied: %+v", cfg.Player)
	}
	if cfg.Display.Width != 1280 || cfg.Display.Height != 800 || cfg.Display.FPS != 60 {
		t.Fatalf("display defaults not applied: %+v", cfg.Display)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "player: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Player.Name != "Shopper" || cfg.Player.Age != 18 {
		t.Fatalf("unexpected defaults: %+v", cfg.Player)
	}
	if cfg.Player.StartingBalance != 1000 || cfg.Player.BankBalance != 50000 {
		t.Fatalf("unexpected fund defaults: %+v", cfg.Player)
	}
}
