// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"go-cave-rhythm/internal/app"
	"go-cave-rhythm/internal/audio"
	"go-cave-rhythm/internal/component"
	"go-cave-rhythm/internal/input"
	"go-cave-rhythm/internal/ui"
	"go-cave-rhythm/pkg/logger"
)

var _ State = (*GameState)(nil)

// GameState — состояние игры: оверворлд и бой.
type GameState struct {
	sm     *StateMachine
	svc    *Services
	game   *app.Game
	world  *ui.WorldView
	hud    *ui.HUD
	combat *ui.CombatView

	// собственные часы: пауза не должна сдвигать ритм-секцию
	clock float64
}

// NewGameState строит пещеру по настройкам и запускает игру.
func NewGameState(sm *StateMachine, svc *Services) (*GameState, error) {
	lvl, err := app.BuildLevel(svc.Settings, svc.Rng)
	if err != nil {
		return nil, err
	}
	g := app.NewGame(lvl, svc.Settings, svc.Spells, svc.Rng)
	if svc.Sink != nil {
		audio.NewCueListener(svc.Sink, svc.Settings.Volume).Subscribe(g.EventDispatcher)
	}

	logger.Log.WithFields(logrus.Fields{
		"level":  lvl.ID,
		"seed":   svc.Rng.Seed(),
		"width":  lvl.Width,
		"height": lvl.Height,
	}).Info("game started")

	return &GameState{
		sm:     sm,
		svc:    svc,
		game:   g,
		world:  ui.NewWorldView(),
		hud:    ui.NewHUD(),
		combat: ui.NewCombatView(svc.Settings.LaneKeys),
	}, nil
}

// Game возвращает игровую логику.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(in *input.Snapshot) {
	if in.Pressed(input.KeyP) || (g.game.Mode == component.OverworldMode && in.Pressed(input.KeyEscape)) {
		g.sm.SetState(NewPauseState(g.sm, g, g.svc.Font))
		return
	}
	g.clock += in.Delta
	in.Elapsed = g.clock
	g.game.Update(in)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	camera := g.game.Camera().Position
	g.world.Draw(screen, g.game.Level(), camera)

	font := g.svc.Font
	switch g.game.Mode {
	case component.OverworldMode:
		if player, ok := g.game.Level().Player(); ok {
			g.hud.Draw(screen, font, player.Health, g.game.Treasure, g.svc.Settings.Fireballs)
		}
	case component.CombatMode:
		g.combat.Draw(screen, font, g.world, camera, g.game.Combat, g.game.GetGameTime())
	}
}

func (g *GameState) Exit() {}
