// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed spells.json
var defaultSpells []byte

// LoadDefaultSpells разбирает встроенный spells.json.
func LoadDefaultSpells() (*SpellBook, error) {
	return ParseSpells(defaultSpells)
}

// LoadSpells читает файл определений заклинаний. Пустой путь означает встроенный набор.
func LoadSpells(path string) (*SpellBook, error) {
	if path == "" {
		return LoadDefaultSpells()
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spell definitions file: %w", err)
	}
	return ParseSpells(file)
}

// ParseSpells строит SpellBook из JSON-массива определений.
func ParseSpells(data []byte) (*SpellBook, error) {
	var spellDefs []SpellDefinition
	if err := json.Unmarshal(data, &spellDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spell definitions: %w", err)
	}
	if len(spellDefs) == 0 {
		return nil, fmt.Errorf("spell definitions are empty")
	}

	book := &SpellBook{byID: make(map[string]int, len(spellDefs))}
	for _, def := range spellDefs {
		if def.ID == "" {
			return nil, fmt.Errorf("spell %q has no id", def.Name)
		}
		if _, dup := book.byID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate spell id %q", def.ID)
		}
		if def.BaseDamage <= 0 {
			return nil, fmt.Errorf("spell %q: base_damage must be positive", def.ID)
		}
		book.byID[def.ID] = len(book.spells)
		book.spells = append(book.spells, def)
	}
	return book, nil
}
