package component

// Brain выбирает поведение сущности на каждом кадре.
type Brain int

const (
	BrainPlayer Brain = iota
	BrainTreasure
	BrainMonster
	BrainFireball
)

func (b Brain) String() string {
	switch b {
	case BrainPlayer:
		return "player"
	case BrainTreasure:
		return "treasure"
	case BrainMonster:
		return "monster"
	case BrainFireball:
		return "fireball"
	}
	return "unknown"
}
