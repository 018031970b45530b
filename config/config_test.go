package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Grid.Cols != 60 || cfg.Grid.Rows != 75 {
		t.Errorf("grid = %dx%d, want 60x75", cfg.Grid.Cols, cfg.Grid.Rows)
	}
	if cfg.Spawner.Budget != 150 || cfg.Spawner.Capacity != 25 {
		t.Errorf("spawner budget/capacity = %d/%d, want 150/25", cfg.Spawner.Budget, cfg.Spawner.Capacity)
	}
	if cfg.Derived.CellSize != 18 {
		t.Errorf("cell size = %v, want 18", cfg.Derived.CellSize)
	}
	if cfg.Derived.BackgroundRGB != [3]uint8{0x00, 0x6b, 0x59} {
		t.Errorf("background = %v, want [0 107 89]", cfg.Derived.BackgroundRGB)
	}
	if len(cfg.Assets.Frames) != cfg.Figures.FrameCount {
		t.Errorf("default frames = %d, frame_count = %d", len(cfg.Assets.Frames), cfg.Figures.FrameCount)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	overlay := "spawner:\n  budget: 20\ngrid:\n  cols: 30\n"
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load overlay: %v", err)
	}

	if cfg.Spawner.Budget != 20 {
		t.Errorf("budget = %d, want 20", cfg.Spawner.Budget)
	}
	// Fields absent from the overlay keep their defaults
	if cfg.Spawner.Capacity != 25 {
		t.Errorf("capacity = %d, want default 25", cfg.Spawner.Capacity)
	}
	if cfg.Derived.CellSize != 36 {
		t.Errorf("cell size = %v, want 36", cfg.Derived.CellSize)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		overlay string
	}{
		{"zero cols", "grid:\n  cols: 0\n"},
		{"negative dt", "physics:\n  dt: -1\n"},
		{"empty batch range", "spawner:\n  batch_min: 5\n  batch_max: 5\n"},
		{"no frames", "figures:\n  frame_count: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.overlay), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Defaults()
	cfg.Formation.WanderTicks = 77

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if back.Formation.WanderTicks != 77 {
		t.Errorf("wander ticks = %d, want 77", back.Formation.WanderTicks)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want [3]uint8
	}{
		{"#006b59", [3]uint8{0, 107, 89}},
		{"#ffffff", [3]uint8{255, 255, 255}},
		{"006b59", [3]uint8{}},
		{"#zz0000", [3]uint8{}},
	}
	for _, tt := range tests {
		if got := parseHexColor(tt.in); got != tt.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
