// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"io/fs"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/defs"
	"go-cave-rhythm/internal/platform"
	"go-cave-rhythm/internal/state"
	"go-cave-rhythm/internal/ui"
	"go-cave-rhythm/internal/utils"
	"go-cave-rhythm/pkg/logger"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	keyboard       *platform.Keyboard
	startTime      time.Time
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	in := a.keyboard.ReadInput(deltaTime, now.Sub(a.startTime).Seconds())
	a.stateMachine.Update(in)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func loadSettings(path string) config.Settings {
	if path == "" {
		return config.DefaultSettings()
	}
	settings, err := config.LoadSettings(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Log.WithField("path", path).Warn("settings file not found, using defaults")
		return config.DefaultSettings()
	}
	if err != nil {
		logger.Log.WithError(err).WithField("path", path).Fatal("failed to load settings")
	}
	return settings
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	flag.Parse()

	logger.Init()

	settings := loadSettings(*configPath)
	if *seed != 0 {
		settings.Seed = *seed
	}

	spells, err := defs.LoadSpells(settings.SpellsFile)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load spells")
	}
	if settings.FireballSpell != "" {
		if _, err := spells.Get(settings.FireballSpell); errors.Is(err, defs.ErrUnknownSpell) {
			logger.Log.WithError(err).Fatal("fireball_spell is not in the spell book")
		}
	}
	keyboard, err := platform.NewKeyboard(settings.LaneKeys)
	if err != nil {
		logger.Log.WithError(err).Fatal("invalid lane keys")
	}

	rng := utils.NewPRNGService(settings.Seed)
	logger.Log.WithFields(logrus.Fields{
		"seed":   rng.Seed(),
		"spells": spells.Len(),
	}).Info("starting")

	svc := &state.Services{
		Settings: settings,
		Spells:   spells,
		Rng:      rng,
		Sink:     platform.NewSpeaker(),
		Font:     ui.NewFont(),
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromGame {
		gs, err := state.NewGameState(sm, svc)
		if err != nil {
			logger.Log.WithError(err).Fatal("failed to build the cave")
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, svc))
	}

	now := time.Now()
	app := &AppGame{
		stateMachine:   sm,
		keyboard:       keyboard,
		startTime:      now,
		lastUpdateTime: now,
	}
	scale := settings.WindowScale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(config.ScreenWidth*scale), int(config.ScreenHeight*scale))
	ebiten.SetWindowTitle("Cave Rhythm")
	if err := ebiten.RunGame(app); err != nil {
		logger.Log.WithError(err).Fatal("game loop stopped")
	}
}
