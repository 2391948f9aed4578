// Package platform adapts ebiten input and audio to the engine-free game core.
package platform

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-cave-rhythm/internal/config"
	"go-cave-rhythm/internal/input"
)

// Keyboard maps physical keys onto the logical keys of input.Snapshot.
type Keyboard struct {
	bindings map[input.Key][]ebiten.Key
}

// NewKeyboard builds the fixed bindings plus the configurable rhythm lanes.
func NewKeyboard(laneNames []string) (*Keyboard, error) {
	if len(laneNames) != config.Lanes {
		return nil, fmt.Errorf("expected %d lane keys, got %d", config.Lanes, len(laneNames))
	}
	kb := &Keyboard{bindings: map[input.Key][]ebiten.Key{
		input.KeyUp:     {ebiten.KeyW, ebiten.KeyArrowUp},
		input.KeyDown:   {ebiten.KeyS, ebiten.KeyArrowDown},
		input.KeyLeft:   {ebiten.KeyA, ebiten.KeyArrowLeft},
		input.KeyRight:  {ebiten.KeyD, ebiten.KeyArrowRight},
		input.KeySpace:  {ebiten.KeySpace},
		input.KeyEnter:  {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		input.KeyEscape: {ebiten.KeyEscape},
		input.Key1:      {ebiten.Key1, ebiten.KeyNumpad1},
		input.Key2:      {ebiten.Key2, ebiten.KeyNumpad2},
		input.Key3:      {ebiten.Key3, ebiten.KeyNumpad3},
		input.Key4:      {ebiten.Key4, ebiten.KeyNumpad4},
		input.KeyB:      {ebiten.KeyB},
		input.KeyP:      {ebiten.KeyP},
		input.KeyR:      {ebiten.KeyR},
		input.KeyT:      {ebiten.KeyT},
	}}
	for lane, name := range laneNames {
		key, err := parseKey(name)
		if err != nil {
			return nil, fmt.Errorf("lane %d: %w", lane, err)
		}
		kb.bindings[input.LaneKey(lane)] = []ebiten.Key{key}
	}
	return kb, nil
}

func parseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err == nil {
		return k, nil
	}
	if err := k.UnmarshalText([]byte(input.NormalizeKeyName(name))); err != nil {
		return 0, fmt.Errorf("unknown key %q: %w", name, err)
	}
	return k, nil
}

// ReadInput samples the keyboard for this frame.
func (kb *Keyboard) ReadInput(delta, elapsed float64) *input.Snapshot {
	in := &input.Snapshot{Delta: delta, Elapsed: elapsed}
	for logical, keys := range kb.bindings {
		var down, pressed, released bool
		for _, k := range keys {
			down = down || ebiten.IsKeyPressed(k)
			pressed = pressed || inpututil.IsKeyJustPressed(k)
			released = released || inpututil.IsKeyJustReleased(k)
		}
		// отпускание одной из двух клавиш при зажатой второй не считается
		in.SetKey(logical, down, pressed, released && !down)
	}
	return in
}
