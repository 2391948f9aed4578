// internal/app/world.go
package app

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/level"
	"go-cave-rhythm/internal/utils"
	"go-cave-rhythm/pkg/logger"
)

// GenOptions переносит настройки игрока в параметры генератора.
func GenOptions(s config.Settings) level.GenOptions {
	opts := level.DefaultGenOptions()
	opts.MonsterCount = s.MonsterCount
	opts.TreasureChance = s.TreasureChance
	return opts
}

// BuildLevel creates the starting level from settings.
func BuildLevel(s config.Settings, rng utils.Rand) (*level.Level, error) {
	lvl := level.New(0, 0, nil, nil)
	if err := Fill(lvl, s, rng); err != nil {
		return nil, err
	}
	return lvl, nil
}

// Fill loads the configured level image or generates a cave into lvl.
// Placement failures are retried with the next random draws; lvl is left
// untouched when every attempt fails.
func Fill(lvl *level.Level, s config.Settings, rng utils.Rand) error {
	opts := GenOptions(s)

	var err error
	for attempt := 1; attempt <= config.MaxRegenerateAttempts; attempt++ {
		if s.LevelImage != "" {
			err = lvl.Load(s.LevelImage, rng, opts)
		} else {
			err = lvl.Regenerate(s.LevelWidth, s.LevelHeight, rng, opts)
		}
		if err == nil {
			return nil
		}
		if !errors.Is(err, level.ErrNoFloor) {
			return err
		}
		logger.Log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err,
		}).Warn("level placement failed, retrying")
	}
	return fmt.Errorf("level generation failed after %d attempts: %w", config.MaxRegenerateAttempts, err)
}
