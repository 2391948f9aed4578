// internal/defs/spells.go
package defs

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrUnknownSpell возвращается, когда в библиотеке нет заклинания с таким ID.
var ErrUnknownSpell = errors.New("unknown spell")

// SpellDefinition — статические данные заклинания для меню атаки.
type SpellDefinition struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	BaseDamage float64 `json:"base_damage"`
	Color      Color   `json:"color"`
}

// Color задаёт цвет снаряда заклинания в JSON.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBA переводит цвет в image/color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// SpellBook хранит заклинания в порядке из файла; порядок задаёт клавиши 1..N.
type SpellBook struct {
	spells []SpellDefinition
	byID   map[string]int
}

// Len возвращает число заклинаний.
func (b *SpellBook) Len() int {
	return len(b.spells)
}

// At возвращает заклинание по позиции в меню.
func (b *SpellBook) At(i int) (SpellDefinition, bool) {
	if i < 0 || i >= len(b.spells) {
		return SpellDefinition{}, false
	}
	return b.spells[i], true
}

// Get ищет заклинание по ID.
func (b *SpellBook) Get(id string) (SpellDefinition, error) {
	i, ok := b.byID[id]
	if !ok {
		return SpellDefinition{}, fmt.Errorf("%w: %q", ErrUnknownSpell, id)
	}
	return b.spells[i], nil
}

// All возвращает копию списка заклинаний.
func (b *SpellBook) All() []SpellDefinition {
	out := make([]SpellDefinition, len(b.spells))
	copy(out, b.spells)
	return out
}
