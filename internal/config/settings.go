package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the values a player may override from a YAML file.
type Settings struct {
	Seed           int64    `yaml:"seed"`
	LevelWidth     int      `yaml:"level_width"`
	LevelHeight    int      `yaml:"level_height"`
	LevelImage     string   `yaml:"level_image"`
	MonsterCount   int      `yaml:"monster_count"`
	TreasureChance float64  `yaml:"treasure_chance"`
	Fireballs      bool     `yaml:"fireballs"`
	LaneKeys       []string `yaml:"lane_keys"`
	SpellsFile     string   `yaml:"spells_file"`
	FireballSpell  string   `yaml:"fireball_spell"`
	Volume         float64  `yaml:"volume"`
	WindowScale    float64  `yaml:"window_scale"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		LevelWidth:     DefaultLevelWidth,
		LevelHeight:    DefaultLevelHeight,
		MonsterCount:   DefaultMonsterCount,
		TreasureChance: TreasureChance,
		Fireballs:      true,
		LaneKeys:       []string{"D", "F", "J", "K"},
		FireballSpell:  "SPELL_FIREBALL",
		Volume:         0.5,
		WindowScale:    1,
	}
}

// LoadSettings reads a YAML file on top of DefaultSettings.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate rejects settings the generator or rhythm engine cannot work with.
func (s Settings) Validate() error {
	if s.LevelImage == "" && (s.LevelWidth < 2 || s.LevelHeight < 2) {
		return fmt.Errorf("level size %dx%d is too small", s.LevelWidth, s.LevelHeight)
	}
	if s.MonsterCount < 0 {
		return fmt.Errorf("monster_count must not be negative, got %d", s.MonsterCount)
	}
	if s.TreasureChance < 0 || s.TreasureChance > 1 {
		return fmt.Errorf("treasure_chance must be within [0,1], got %g", s.TreasureChance)
	}
	if len(s.LaneKeys) != Lanes {
		return fmt.Errorf("lane_keys must list %d keys, got %d", Lanes, len(s.LaneKeys))
	}
	return nil
}
