package component

// GameMode — в каком режиме сейчас игра
type GameMode int

const (
	OverworldMode GameMode = iota
	CombatMode
)

func (m GameMode) String() string {
	if m == CombatMode {
		return "combat"
	}
	return "overworld"
}
