// internal/combat/session.go
package combat

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/defs"
	"go-cave-rhythm/internal/entity"
	"go-cave-rhythm/internal/event"
	"go-cave-rhythm/internal/input"
	"go-cave-rhythm/internal/rhythm"
	"go-cave-rhythm/internal/utils"
	"go-cave-rhythm/pkg/logger"
)

// Состояния боя
const (
	StateMain    = "main"
	StateAttack  = "attack"
	StateDefend  = "defend"
	StateExamine = "examine"
	StateFlee    = "flee"
)

// События автомата
const (
	EventAttack  = "attack"
	EventDefend  = "defend"
	EventExamine = "examine"
	EventFlee    = "flee"
	EventBack    = "back"
)

// Outcome описывает, чем закончился бой.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeFled
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeFled:
		return "fled"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

// Session — один бой игрока с монстром. Сущности не принадлежат сессии:
// удаление побеждённого монстра делает Game.
type Session struct {
	ID       uuid.UUID
	Player   *entity.Entity
	Opponent *entity.Entity
	Rhythm   *rhythm.Engine

	spells *defs.SpellBook
	events *event.Dispatcher
	fsm    *fsm.FSM

	stateTime     float64 // секунды с входа в текущее состояние
	sequenceStart float64 // stateTime, когда закончилась ритм-секция
	rhythmActive  bool
	rhythmEnded   bool
	effectApplied bool
	spellChosen   bool

	spell     defs.SpellDefinition
	lastScore float64
	outcome   Outcome
}

// NewSession начинает бой в состоянии main. events может быть nil.
func NewSession(player, opponent *entity.Entity, spells *defs.SpellBook, rng utils.Rand, events *event.Dispatcher) *Session {
	if player == nil || opponent == nil || spells == nil {
		panic("combat: session needs both participants and a spell book")
	}
	s := &Session{
		ID:       uuid.New(),
		Player:   player,
		Opponent: opponent,
		Rhythm:   rhythm.NewEngine(rng),
		spells:   spells,
		events:   events,
	}
	s.fsm = fsm.NewFSM(
		StateMain,
		fsm.Events{
			{Name: EventAttack, Src: []string{StateMain}, Dst: StateAttack},
			{Name: EventDefend, Src: []string{StateMain}, Dst: StateDefend},
			{Name: EventExamine, Src: []string{StateMain}, Dst: StateExamine},
			{Name: EventFlee, Src: []string{StateMain}, Dst: StateFlee},
			{Name: EventBack, Src: []string{StateAttack, StateDefend, StateExamine, StateFlee}, Dst: StateMain},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				s.resetState()
				logger.Log.WithFields(logrus.Fields{
					"session": s.ID,
					"from":    e.Src,
					"to":      e.Dst,
				}).Debug("combat state changed")
			},
		},
	)
	return s
}

// resetState сбрасывает таймер состояния и флаги подфаз.
func (s *Session) resetState() {
	s.stateTime = 0
	s.sequenceStart = 0
	s.rhythmActive = false
	s.rhythmEnded = false
	s.effectApplied = false
	s.spellChosen = false
	s.Rhythm.Stop()
}

func (s *Session) State() string           { return s.fsm.Current() }
func (s *Session) StateTime() float64      { return s.stateTime }
func (s *Session) Outcome() Outcome        { return s.outcome }
func (s *Session) Done() bool              { return s.outcome != OutcomeNone }
func (s *Session) LastScore() float64      { return s.lastScore }
func (s *Session) Spells() *defs.SpellBook { return s.spells }

// Spell возвращает выбранное заклинание, если атака уже идёт.
func (s *Session) Spell() (defs.SpellDefinition, bool) {
	return s.spell, s.spellChosen
}

// ChoosingSpell: атака ждёт выбора заклинания.
func (s *Session) ChoosingSpell() bool {
	return s.State() == StateAttack && !s.spellChosen
}

// RhythmActive сообщает, что идёт ритм-секция.
func (s *Session) RhythmActive() bool { return s.rhythmActive }

// AwaitingConfirm: защита или побег ждут Enter.
func (s *Session) AwaitingConfirm() bool {
	switch s.State() {
	case StateDefend:
		return !s.rhythmActive && !s.rhythmEnded
	case StateFlee:
		return true
	}
	return false
}

// ProjectileX возвращает X снаряда атаки во время полёта.
func (s *Session) ProjectileX() (float64, bool) {
	if s.State() != StateAttack || !s.rhythmEnded {
		return 0, false
	}
	t := s.stateTime - s.sequenceStart
	if t >= config.ProjectileTravelTime {
		return 0, false
	}
	return utils.Lerp(s.Player.Position.X, s.Opponent.Position.X, t/config.ProjectileTravelTime), true
}

// Update продвигает бой на один кадр.
func (s *Session) Update(deltaTime float64, in *input.Snapshot) {
	if s.Done() {
		return
	}
	s.stateTime += deltaTime

	switch s.State() {
	case StateMain:
		s.updateMain(in)
	case StateAttack:
		s.updateAttack(in)
	case StateDefend:
		s.updateDefend(in)
	case StateExamine:
		if in.Pressed(input.KeyB) {
			s.fire(EventBack)
		}
	case StateFlee:
		if in.Pressed(input.KeyB) {
			s.fire(EventBack)
		} else if in.Pressed(input.KeyEnter) {
			s.finish(OutcomeFled)
		}
	}
}

func (s *Session) updateMain(in *input.Snapshot) {
	if s.Opponent.Health.Dead() {
		s.finish(OutcomeVictory)
		return
	}
	if s.Player.Health.Dead() {
		s.finish(OutcomeDefeat)
		return
	}
	actions := []string{EventAttack, EventDefend, EventExamine, EventFlee}
	for i, name := range actions {
		if in.Pressed(input.NumberKey(i + 1)) {
			s.fire(name)
			return
		}
	}
}

func (s *Session) updateAttack(in *input.Snapshot) {
	switch {
	case !s.spellChosen:
		if in.Pressed(input.KeyB) {
			s.fire(EventBack)
			return
		}
		for i := 0; i < s.spells.Len() && i < 4; i++ {
			if in.Pressed(input.NumberKey(i + 1)) {
				s.spell, _ = s.spells.At(i)
				s.spellChosen = true
				logger.Log.WithFields(logrus.Fields{"session": s.ID, "spell": s.spell.ID}).Info("spell chosen")
				s.startRhythm(in)
				return
			}
		}
	case s.rhythmActive:
		s.updateRhythm(in)
	case s.rhythmEnded:
		t := s.stateTime - s.sequenceStart
		if t >= config.ProjectileTravelTime && !s.effectApplied {
			s.effectApplied = true
			s.applyDamage(s.Opponent, s.spell.BaseDamage*s.lastScore, s.spell.ID)
		}
		if t >= config.AttackSequenceDuration {
			s.fire(EventBack)
		}
	}
}

func (s *Session) updateDefend(in *input.Snapshot) {
	switch {
	case !s.rhythmActive && !s.rhythmEnded:
		if in.Pressed(input.KeyB) {
			s.fire(EventBack)
		} else if in.Pressed(input.KeyEnter) {
			s.startRhythm(in)
		}
	case s.rhythmActive:
		s.updateRhythm(in)
	default:
		if !s.effectApplied {
			s.effectApplied = true
			s.applyDamage(s.Player, config.MonsterStrikeDamage*(1-s.lastScore), "monster")
		}
		if s.stateTime-s.sequenceStart >= config.ProjectileTravelTime {
			s.fire(EventBack)
		}
	}
}

func (s *Session) startRhythm(in *input.Snapshot) {
	s.Rhythm.Loop = false
	s.Rhythm.Start(in.Elapsed)
	s.rhythmActive = true
	s.rhythmEnded = false
}

func (s *Session) updateRhythm(in *input.Snapshot) {
	for _, j := range s.Rhythm.Update(in.Elapsed, in) {
		s.queue(event.Event{Type: event.NoteJudged, Data: event.NoteResult{Lane: j.Lane, Score: j.Score}})
	}
	if !s.Rhythm.Ended() {
		return
	}
	s.rhythmActive = false
	s.rhythmEnded = true
	s.lastScore = s.Rhythm.Score()
	s.sequenceStart = s.stateTime
	logger.Log.WithFields(logrus.Fields{
		"session": s.ID,
		"state":   s.State(),
		"score":   s.lastScore,
	}).Info("rhythm section finished")
}

func (s *Session) applyDamage(target *entity.Entity, amount float64, source string) {
	dealt := target.Health.Damage(amount)
	target.Render.Flash = config.DamageFlashDuration
	logger.Log.WithFields(logrus.Fields{
		"session": s.ID,
		"target":  target.ID,
		"amount":  dealt,
		"source":  source,
	}).Info("combat damage")
	s.queue(event.Event{Type: event.DamageApplied, Data: event.DamageInfo{
		TargetID: target.ID,
		Amount:   dealt,
		Source:   source,
	}})
}

func (s *Session) finish(o Outcome) {
	s.outcome = o
	s.Rhythm.Stop()
	logger.Log.WithFields(logrus.Fields{"session": s.ID, "outcome": o.String()}).Info("combat finished")
}

func (s *Session) fire(name string) {
	err := s.fsm.Event(context.Background(), name)
	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		logger.Log.WithError(err).WithField("event", name).Warn("combat transition rejected")
	}
}

func (s *Session) queue(e event.Event) {
	if s.events != nil {
		s.events.Queue(e)
	}
}
