package event

import "go-cave-rhythm/internal/types"

const (
	LevelGenerated    EventType = "LevelGenerated"    // Пещера сгенерирована или загружена
	CombatStarted     EventType = "CombatStarted"     // Игрок столкнулся с монстром
	CombatEnded       EventType = "CombatEnded"       // Бой завершён (Data: CombatInfo)
	EntityRemoved     EventType = "EntityRemoved"     // Сущность удалена из уровня
	TreasureCollected EventType = "TreasureCollected" // Игрок подобрал сокровище
	NoteJudged        EventType = "NoteJudged"        // Нота оценена (Data: NoteResult)
	DamageApplied     EventType = "DamageApplied"     // Урон нанесён (Data: DamageInfo)
	FireballCast      EventType = "FireballCast"      // Игрок выпустил огненный шар
)

// NoteResult — данные события NoteJudged
type NoteResult struct {
	Lane  int
	Score float64
}

// DamageInfo: данные события DamageApplied
type DamageInfo struct {
	TargetID types.EntityID
	Amount   float64
	Source   string
}

// CombatInfo несёт данные событий CombatStarted и CombatEnded
type CombatInfo struct {
	SessionID  string
	OpponentID types.EntityID
	Outcome    string // пусто для CombatStarted
}
