// Package input holds the per-frame keyboard and clock snapshot the game core reads.
// It knows nothing about the windowing library; internal/platform fills it.
package input

import "strings"

// Key identifies a logical key the game cares about.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
	Key1
	Key2
	Key3
	Key4
	KeyB
	KeyP
	KeyR
	KeyT
	KeyLane0
	KeyLane1
	KeyLane2
	KeyLane3
	keyCount
)

// Keys lists every logical key, in declaration order.
func Keys() []Key {
	keys := make([]Key, keyCount)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// LaneKey returns the key bound to rhythm lane i.
func LaneKey(lane int) Key {
	return KeyLane0 + Key(lane)
}

// NumberKey returns Key1..Key4 for n in 1..4.
func NumberKey(n int) Key {
	return Key1 + Key(n-1)
}

// Snapshot is everything the core reads from the platform in one frame.
type Snapshot struct {
	Delta   float64 // секунды с прошлого кадра
	Elapsed float64 // монотонные секунды с запуска
	down    [keyCount]bool
	pressed [keyCount]bool
	release [keyCount]bool
}

// Down reports whether k is held this frame.
func (s *Snapshot) Down(k Key) bool {
	return s.down[k]
}

// Pressed reports whether k went down this frame.
func (s *Snapshot) Pressed(k Key) bool {
	return s.pressed[k]
}

// Released reports whether k went up this frame.
func (s *Snapshot) Released(k Key) bool {
	return s.release[k]
}

// SetKey records the state of k. Used by the platform adapter and by tests.
func (s *Snapshot) SetKey(k Key, down, pressed, released bool) {
	s.down[k] = down
	s.pressed[k] = pressed
	s.release[k] = released
}

// Press marks k as going down this frame.
func (s *Snapshot) Press(k Key) {
	s.SetKey(k, true, true, false)
}

// Hold marks k as held without an edge.
func (s *Snapshot) Hold(k Key) {
	s.SetKey(k, true, false, false)
}

// Release marks k as going up this frame.
func (s *Snapshot) Release(k Key) {
	s.SetKey(k, false, false, true)
}

// Direction returns the raw movement axes from the arrow keys; not normalised.
func (s *Snapshot) Direction() (x, y float64) {
	if s.Down(KeyLeft) {
		x--
	}
	if s.Down(KeyRight) {
		x++
	}
	if s.Down(KeyUp) {
		y++
	}
	if s.Down(KeyDown) {
		y--
	}
	return x, y
}

// NormalizeKeyName upper-cases a key name from the settings file.
func NormalizeKeyName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
