package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	path := writeSettings(t, "seed: 42\nlevel_width: 64\nfireballs: false\n")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Seed != 42 || s.LevelWidth != 64 {
		t.Errorf("overrides not applied: %+v", s)
	}
	if s.Fireballs {
		t.Error("fireballs should be disabled")
	}
	if s.LevelHeight != DefaultLevelHeight || s.MonsterCount != DefaultMonsterCount {
		t.Errorf("defaults lost: %+v", s)
	}
	if len(s.LaneKeys) != Lanes {
		t.Errorf("expected %d lane keys, got %v", Lanes, s.LaneKeys)
	}
}

func TestLoadSettingsEmptyFile(t *testing.T) {
	s, err := LoadSettings(writeSettings(t, ""))
	if err != nil {
		t.Fatalf("empty file should load defaults: %v", err)
	}
	if s.LevelWidth != DefaultLevelWidth {
		t.Errorf("LevelWidth = %d", s.LevelWidth)
	}
	if s.FireballSpell != "SPELL_FIREBALL" {
		t.Errorf("FireballSpell = %q", s.FireballSpell)
	}
}

func TestLoadSettingsRejectsUnknownField(t *testing.T) {
	if _, err := LoadSettings(writeSettings(t, "lvl_width: 3\n")); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestLoadSettingsValidation(t *testing.T) {
	tests := map[string]string{
		"tiny level":     "level_width: 1\n",
		"bad chance":     "treasure_chance: 1.5\n",
		"missing lanes":  "lane_keys: [A, B]\n",
		"negative count": "monster_count: -1\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadSettings(writeSettings(t, body)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
