package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML and Default() differ:\n yaml: %+v\n code: %+v", cfg, Default())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 900\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Physics.Gravity != 900 {
		t.Errorf("Gravity = %v, expected 900", cfg.Physics.Gravity)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpStrength != -500 {
		t.Errorf("JumpStrength = %v, expected default -500", cfg.Physics.JumpStrength)
	}
	if cfg.Player.StartHealth != 3 {
		t.Errorf("StartHealth = %d, expected default 3", cfg.Player.StartHealth)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero gravity", "physics:\n  gravity: 0\n", "physics.gravity"},
		{"upward jump sign", "physics:\n  jump_strength: 500\n", "physics.jump_strength"},
		{"no health", "player:\n  start_health: 0\n", "player.start_health"},
		{"loud music", "audio:\n  music_volume: 2\n", "audio.music_volume"},
		{"bad yaml", "physics: [", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("enemies:\n  patrol_range: 120\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Enemies.PatrolRange != 120 {
		t.Errorf("PatrolRange = %v, expected 120", cfg.Enemies.PatrolRange)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestMarshalUsesYAMLKeys(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "stomp_tolerance: 20") {
		t.Errorf("marshalled config should use yaml keys, got:\n%s", data)
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := Default()
	cfg.Physics.Gravity = 0
	cfg.Player.StartHealth = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, want := range []string{"physics.gravity", "player.start_health"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}
