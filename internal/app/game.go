// internal/app/game.go
package app

import (
	"github.com/sirupsen/logrus"

	"go-cave-rhythm/internal/combat"
	"go-cave-rhythm/internal/component"
	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/defs"
	"go-cave-rhythm/internal/event"
	"go-cave-rhythm/internal/input"
	"go-cave-rhythm/internal/level"
	"go-cave-rhythm/internal/system"
	"go-cave-rhythm/internal/utils"
	"go-cave-rhythm/pkg/logger"
)

// Game holds the main game state and logic.
type Game struct {
	Settings        config.Settings
	Spells          *defs.SpellBook
	EventDispatcher *event.Dispatcher
	Simulation      *system.Simulation
	Combat          *combat.Session
	Mode            component.GameMode
	Treasure        int

	level    *level.Level
	rng      utils.Rand
	gameTime float64
}

// NewGame initializes a new game instance around an already built level.
func NewGame(lvl *level.Level, settings config.Settings, spells *defs.SpellBook, rng utils.Rand) *Game {
	if lvl == nil {
		panic("level cannot be nil")
	}
	if spells == nil {
		panic("spell book cannot be nil")
	}

	g := &Game{
		Settings:        settings,
		Spells:          spells,
		EventDispatcher: event.NewDispatcher(),
		Mode:            component.OverworldMode,
		level:           lvl,
		rng:             rng,
	}
	g.Simulation = system.NewSimulation(g, settings.Fireballs)
	if settings.FireballSpell != "" {
		spell, err := spells.Get(settings.FireballSpell)
		if err != nil {
			logger.Log.WithError(err).Warn("fireball spell not found, casting plain fireballs")
		} else {
			g.Simulation.Player.SetSpell(spell)
		}
	}
	g.snapCamera()

	listener := &GameEventListener{game: g}
	g.EventDispatcher.Subscribe(event.LevelGenerated, listener)
	g.EventDispatcher.Subscribe(event.CombatStarted, listener)
	g.EventDispatcher.Subscribe(event.CombatEnded, listener)
	g.EventDispatcher.Subscribe(event.TreasureCollected, listener)

	return g
}

// Level, Events и Rand реализуют system.World.
func (g *Game) Level() *level.Level        { return g.level }
func (g *Game) Events() *event.Dispatcher { return g.EventDispatcher }
func (g *Game) Rand() utils.Rand          { return g.rng }

// Camera возвращает камеру оверворлда.
func (g *Game) Camera() *system.Camera {
	return g.Simulation.Camera
}

// GetGameTime возвращает время, прошедшее в игре.
func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// Update progresses the game state by one frame.
func (g *Game) Update(in *input.Snapshot) {
	dt := in.Delta
	g.gameTime += dt

	switch g.Mode {
	case component.OverworldMode:
		if in.Pressed(input.KeyR) {
			if err := g.Regenerate(); err != nil {
				logger.Log.WithError(err).Error("regeneration failed, keeping the current cave")
			}
			return
		}
		result := g.Simulation.Update(dt, in)
		g.Treasure += result.Treasure
		if result.Combat != nil {
			g.startCombat(result)
		}
	case component.CombatMode:
		g.Combat.Update(dt, in)
		g.EventDispatcher.Flush()
		if g.Combat.Done() {
			g.endCombat()
		}
	}
}

// Regenerate replaces the cave with a fresh one. On failure the current cave stays.
func (g *Game) Regenerate() error {
	if err := Fill(g.level, g.Settings, g.rng); err != nil {
		return err
	}
	g.snapCamera()
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelGenerated, Data: g.level.ID.String()})
	return nil
}

func (g *Game) snapCamera() {
	if player, ok := g.level.Player(); ok {
		g.Simulation.Camera.Snap(player.Position)
	}
}

func (g *Game) startCombat(result system.StepResult) {
	player, ok := g.level.Player()
	if !ok {
		return
	}
	g.Combat = combat.NewSession(player, result.Combat, g.Spells, g.rng, g.EventDispatcher)
	g.Mode = component.CombatMode
	g.EventDispatcher.Dispatch(event.Event{Type: event.CombatStarted, Data: event.CombatInfo{
		SessionID:  g.Combat.ID.String(),
		OpponentID: result.Combat.ID,
	}})
}

// endCombat применяет исход боя и возвращает игру в оверворлд.
func (g *Game) endCombat() {
	session := g.Combat
	outcome := session.Outcome()

	switch outcome {
	case combat.OutcomeVictory:
		ents := g.level.Entities
		ents.MarkRemoved(ents.IndexOf(session.Opponent.ID))
		for _, gone := range ents.Flush() {
			g.EventDispatcher.Dispatch(event.Event{Type: event.EntityRemoved, Data: gone})
		}
	case combat.OutcomeDefeat:
		session.Player.Health.Heal()
	}
	session.Player.Player.CombatCooldown = config.CombatCooldown

	g.Combat = nil
	g.Mode = component.OverworldMode
	g.EventDispatcher.Dispatch(event.Event{Type: event.CombatEnded, Data: event.CombatInfo{
		SessionID:  session.ID.String(),
		OpponentID: session.Opponent.ID,
		Outcome:    outcome.String(),
	}})
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelGenerated:
		lvl := l.game.level
		logger.Log.WithFields(logrus.Fields{
			"level":    e.Data,
			"width":    lvl.Width,
			"height":   lvl.Height,
			"monsters": lvl.Count(component.BrainMonster),
			"treasure": lvl.Count(component.BrainTreasure),
		}).Info("level ready")
	case event.CombatStarted, event.CombatEnded:
		if info, ok := e.Data.(event.CombatInfo); ok {
			logger.Log.WithFields(logrus.Fields{
				"session":  info.SessionID,
				"opponent": info.OpponentID,
				"outcome":  info.Outcome,
			}).Info(string(e.Type))
		}
	case event.TreasureCollected:
		logger.Log.WithField("id", e.Data).Debug("treasure collected")
	}
}
