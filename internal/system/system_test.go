package system

import (
	"math"
	"testing"

	"go-cave-rhythm/internal/component"
	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/defs"
	"go-cave-rhythm/internal/entity"
	"go-cave-rhythm/internal/event"
	"go-cave-rhythm/internal/input"
	"go-cave-rhythm/internal/level"
	"go-cave-rhythm/internal/utils"
	"go-cave-rhythm/pkg/geom"
)

// constRand всегда возвращает одно и то же значение.
type constRand struct{ f float64 }

func (r constRand) Float64() float64 { return r.f }
func (r constRand) Intn(n int) int   { return 0 }

type testWorld struct {
	lvl    *level.Level
	events *event.Dispatcher
	rng    utils.Rand
}

func (w *testWorld) Level() *level.Level        { return w.lvl }
func (w *testWorld) Events() *event.Dispatcher { return w.events }
func (w *testWorld) Rand() utils.Rand          { return w.rng }

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// openWorld строит уровень без стен; монстры не бросают кубик, пока rng не попросят иначе.
func openWorld(w, h int, ents ...*entity.Entity) (*testWorld, *recorder) {
	tiles := make([]level.Tile, w*h)
	world := &testWorld{
		lvl:    level.New(w, h, tiles, ents),
		events: event.NewDispatcher(),
		rng:    constRand{f: 0.99},
	}
	rec := &recorder{}
	for _, t := range []event.EventType{event.EntityRemoved, event.DamageApplied, event.TreasureCollected, event.FireballCast} {
		world.events.Subscribe(t, rec)
	}
	return world, rec
}

func TestFireballLeavesLevelInFirstUpdate(t *testing.T) {
	ball := level.NewFireball(geom.V(0, 0), geom.V(100, 0), true)
	world, rec := openWorld(5, 5, ball)
	sim := NewSimulation(world, true)

	result := sim.Update(0.1, &input.Snapshot{})

	if world.lvl.Entities.Len() != 0 {
		t.Fatalf("fireball should be gone, %d entities left", world.lvl.Entities.Len())
	}
	if len(result.Removed) != 1 || result.Removed[0] != ball {
		t.Errorf("unexpected removed list %v", result.Removed)
	}
	if rec.count(event.EntityRemoved) != 1 {
		t.Errorf("expected one EntityRemoved event, got %d", rec.count(event.EntityRemoved))
	}
}

func TestFireballStaysInsideLevel(t *testing.T) {
	ball := level.NewFireball(geom.V(1, 1), geom.V(1, 0), true)
	world, _ := openWorld(5, 5, ball)
	sim := NewSimulation(world, true)

	sim.Update(0.1, &input.Snapshot{})

	if world.lvl.Entities.Len() != 1 {
		t.Fatal("fireball inside the level must survive")
	}
	if math.Abs(ball.Position.X-1.1) > 1e-9 || math.Abs(ball.Projectile.Traveled-0.1) > 1e-9 {
		t.Errorf("unexpected fireball state %+v", ball)
	}
}

func TestFireballKillsMonster(t *testing.T) {
	monster := level.NewMonster(geom.V(2, 2))
	monster.Health = component.NewHealth(1)
	ball := level.NewFireball(geom.V(2, 2), geom.V(0.1, 0), true)
	world, rec := openWorld(5, 5, monster, ball)
	sim := NewSimulation(world, true)

	result := sim.Update(0.016, &input.Snapshot{})

	if world.lvl.Entities.Len() != 0 {
		t.Fatalf("monster and fireball should both be removed, %d left", world.lvl.Entities.Len())
	}
	// индексы удаляются по убыванию: сначала шар (1), потом монстр (0)
	if len(result.Removed) != 2 || result.Removed[0] != ball || result.Removed[1] != monster {
		t.Errorf("unexpected removal order %v", result.Removed)
	}
	if rec.count(event.DamageApplied) != 1 {
		t.Errorf("expected one DamageApplied event, got %d", rec.count(event.DamageApplied))
	}
}

func TestFireballHealsDefeatedPlayer(t *testing.T) {
	player := level.NewPlayer(geom.V(2, 2))
	player.Health.Current = 1
	ball := level.NewFireball(geom.V(2, 2), geom.V(0.1, 0), false)
	world, _ := openWorld(5, 5, player, ball)
	sim := NewSimulation(world, true)

	sim.Update(0.016, &input.Snapshot{})

	if world.lvl.Entities.Len() != 1 || world.lvl.Entities.At(0) != player {
		t.Fatal("only the player should remain")
	}
	if player.Health.Current != player.Health.Max {
		t.Errorf("player should be healed to full, got %f", player.Health.Current)
	}
}

func TestFireballIgnoresSameFaction(t *testing.T) {
	player := level.NewPlayer(geom.V(2, 2))
	ball := level.NewFireball(geom.V(2, 2), geom.V(0.1, 0), true)
	world, _ := openWorld(5, 5, player, ball)
	sim := NewSimulation(world, true)

	sim.Update(0.016, &input.Snapshot{})

	if world.lvl.Entities.Len() != 2 {
		t.Errorf("friendly fireball must pass through the player")
	}
	if player.Health.Current != config.PlayerHealth {
		t.Errorf("player took damage: %f", player.Health.Current)
	}
}

func TestPlayerTouchingMonsterRequestsCombat(t *testing.T) {
	player := level.NewPlayer(geom.V(5, 5))
	monster := level.NewMonster(geom.V(5.5, 5))
	world, _ := openWorld(10, 10, player, monster)
	sim := NewSimulation(world, true)

	result := sim.Update(0.016, &input.Snapshot{})
	if result.Combat != monster {
		t.Fatalf("expected combat with the monster, got %v", result.Combat)
	}

	player.Player.CombatCooldown = 1
	result = sim.Update(0.016, &input.Snapshot{})
	if result.Combat != nil {
		t.Error("cooldown must suppress combat")
	}
	if math.Abs(player.Player.CombatCooldown-(1-0.016)) > 1e-9 {
		t.Errorf("cooldown should tick down, got %f", player.Player.CombatCooldown)
	}
}

func TestPlayerCollectsTreasure(t *testing.T) {
	player := level.NewPlayer(geom.V(5, 5))
	treasure := level.NewTreasure(geom.V(5.2, 5.2))
	world, rec := openWorld(10, 10, player, treasure)
	sim := NewSimulation(world, true)

	result := sim.Update(0.016, &input.Snapshot{})

	if result.Treasure != 1 || world.lvl.Count(component.BrainTreasure) != 0 {
		t.Errorf("treasure not collected: %+v", result)
	}
	if rec.count(event.TreasureCollected) != 1 {
		t.Error("expected a TreasureCollected event")
	}
}

func TestPlayerMovesAtFixedSpeed(t *testing.T) {
	player := level.NewPlayer(geom.V(10, 10))
	world, _ := openWorld(20, 20, player)
	sim := NewSimulation(world, true)

	in := &input.Snapshot{}
	in.Hold(input.KeyRight)
	in.Hold(input.KeyUp)
	sim.Update(0.5, in)

	moved := player.Position.Sub(geom.V(10, 10))
	if math.Abs(moved.Len()-config.PlayerSpeed*0.5) > 1e-9 {
		t.Errorf("diagonal move should be normalised, moved %f", moved.Len())
	}
	if moved.X <= 0 || moved.Y <= 0 {
		t.Errorf("expected to move up and right, moved %+v", moved)
	}
	if sim.Camera.Target != player.Position {
		t.Error("camera target should follow the player")
	}
}

func TestPlayerCastsFireball(t *testing.T) {
	player := level.NewPlayer(geom.V(5, 5))
	player.Player.Facing = geom.V(0, 1)
	world, rec := openWorld(10, 10, player)
	sim := NewSimulation(world, true)
	sim.Camera.Snap(player.Position)

	in := &input.Snapshot{}
	in.Press(input.KeySpace)
	sim.Update(0.016, in)

	if world.lvl.Count(component.BrainFireball) != 1 {
		t.Fatal("expected a fireball")
	}
	ball := world.lvl.Entities.At(1)
	if ball.Velocity != geom.V(0, config.FireballSpeed) || ball.Position != player.Position {
		t.Errorf("unexpected fireball %+v", ball)
	}
	if rec.count(event.FireballCast) != 1 {
		t.Error("expected a FireballCast event")
	}

	disabled := NewSimulation(world, false)
	disabled.Update(0.016, in)
	if world.lvl.Count(component.BrainFireball) != 1 {
		t.Error("fireballs disabled must not cast")
	}
}

func TestCastFireballTakesSpell(t *testing.T) {
	player := level.NewPlayer(geom.V(5, 5))
	world, _ := openWorld(10, 10, player)
	sim := NewSimulation(world, true)
	sim.Player.SetSpell(defs.SpellDefinition{ID: "SPELL_TEST", BaseDamage: 2, Color: defs.Color{R: 1, G: 2, B: 3}})

	in := &input.Snapshot{}
	in.Press(input.KeySpace)
	sim.Update(0.016, in)

	ball := world.lvl.Entities.At(1)
	if ball.Brain != component.BrainFireball {
		t.Fatalf("expected a fireball, got %v", ball.Brain)
	}
	if ball.Render.Color != (defs.Color{R: 1, G: 2, B: 3}).RGBA() {
		t.Errorf("fireball color = %v", ball.Render.Color)
	}
	if ball.Damage != 2*config.FireballDamage {
		t.Errorf("fireball damage = %f", ball.Damage)
	}
}

func TestMonsterChargeEndsExactlyAtZero(t *testing.T) {
	monster := level.NewMonster(geom.V(5, 5))
	monster.Charge = component.Charge{Direction: geom.V(1, 0), Remaining: 0.25}
	world, _ := openWorld(10, 10, monster)
	sim := NewSimulation(world, true)

	sim.Update(0.016, &input.Snapshot{})
	if math.Abs(monster.Charge.Remaining-0.09) > 1e-9 {
		t.Fatalf("remaining = %f", monster.Charge.Remaining)
	}
	sim.Update(0.016, &input.Snapshot{})
	if monster.Charge.Remaining != 0 {
		t.Errorf("remaining should clamp to zero, got %g", monster.Charge.Remaining)
	}
	if math.Abs(monster.Position.X-5.25) > 1e-9 {
		t.Errorf("monster should have travelled exactly 0.25, x = %f", monster.Position.X)
	}
}

func TestMonsterChargesAtNearbyPlayer(t *testing.T) {
	player := level.NewPlayer(geom.V(5, 5))
	monster := level.NewMonster(geom.V(8, 5))
	world, _ := openWorld(12, 12, player, monster)
	world.rng = constRand{f: 0}
	sim := NewSimulation(world, true)

	sim.Update(0.016, &input.Snapshot{})

	if math.Abs(monster.Charge.Remaining-3) > 1e-9 {
		t.Errorf("charge length should be the distance to the player, got %f", monster.Charge.Remaining)
	}
	if monster.Charge.Direction != geom.V(-1, 0) {
		t.Errorf("charge direction = %+v", monster.Charge.Direction)
	}
}

func TestMonsterWandersWhenPlayerFar(t *testing.T) {
	player := level.NewPlayer(geom.V(1, 1))
	monster := level.NewMonster(geom.V(30, 30))
	world, _ := openWorld(40, 40, player, monster)
	world.rng = constRand{f: 0}
	sim := NewSimulation(world, true)

	sim.Update(0.016, &input.Snapshot{})

	// Range(-10, 10) при нулевом rng даёт -10 по обеим осям
	if monster.Velocity != geom.V(-10, -10) {
		t.Errorf("wander velocity = %+v", monster.Velocity)
	}
}

func TestCameraSmoothing(t *testing.T) {
	c := NewCamera()
	c.Target = geom.V(10, 0)

	c.Update(0.5)
	if math.Abs(c.Position.X-6) > 1e-9 {
		t.Errorf("after 0.5s x = %f, want 6", c.Position.X)
	}
	c.Update(2)
	if c.Position != c.Target {
		t.Errorf("large delta must land on the target, got %+v", c.Position)
	}
}

func TestDamageFlashFades(t *testing.T) {
	monster := level.NewMonster(geom.V(2, 2))
	monster.Render.Flash = 0.1
	world, _ := openWorld(5, 5, monster)
	sim := NewSimulation(world, true)

	sim.Update(0.3, &input.Snapshot{})
	if monster.Render.Flash != 0 {
		t.Errorf("flash should be cleared, got %f", monster.Render.Flash)
	}
}
