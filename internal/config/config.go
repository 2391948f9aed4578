// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 900
	ScreenHeight = 600
	TilePixels   = 32.0 // размер тайла на экране
	MaxDeltaTime = 0.06

	// Генерация пещеры
	DefaultLevelWidth     = 100
	DefaultLevelHeight    = 100
	WallChance            = 0.4
	CaveIterations        = 5
	DeathLimit            = 3
	BirthLimit            = 4
	TreasureNookWalls     = 4
	TreasureChance        = 0.4
	DefaultMonsterCount   = 80
	MaxPlacementAttempts  = 100000
	MaxRegenerateAttempts = 5

	PlayerSize     = 1.7
	PlayerHealth   = 10
	PlayerSpeed    = 6.0
	MonsterSize    = 1.2
	MonsterHealth  = 5
	MonsterSpeed   = 10.0
	TreasureSize   = 0.8
	CombatCooldown = 2.0 // секунды неуязвимости к новому бою после побега/поражения

	MonsterRollChance   = 0.05
	MonsterChargeRadius = 7.0
	MonsterWanderRange  = 10.0

	FireballSize         = 0.5
	FireballSpeed        = 12.0
	FireballDamage       = 1.0
	FireballCameraCutoff = 12.0
	FireballMaxTravel    = 20.0

	MaxStep         = 0.1 // максимальный шаг перемещения за одну итерацию
	CameraSmoothing = 1.2

	DamageFlashDuration = 0.2 // секунды подсветки после урона

	// Ритм-секция
	Lanes           = 4
	NotesPerSection = 6
	SectionLength   = 8.0
	LeadIn          = 2.0
	MaxNoteDuration = 2.0
	HitTolerance    = 0.15
	NoteTintSpeed   = 4.0

	// Бой
	AttackSequenceDuration = 3.0
	ProjectileTravelTime   = 1.5
	MonsterStrikeDamage    = 2.0

	// Звук
	SampleRate = 44100
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	FloorColor      = color.RGBA{70, 100, 120, 255}
	WallColor       = color.RGBA{40, 30, 40, 255}
	PillarColor     = color.RGBA{150, 70, 70, 255}
	PlayerColor     = color.RGBA{50, 205, 50, 255}
	MonsterColor    = color.RGBA{220, 60, 60, 255}
	TreasureColor   = color.RGBA{255, 215, 0, 255}
	FireballColor   = color.RGBA{255, 140, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	UIBorderColor   = color.RGBA{240, 240, 240, 255}
	UIPanelColor    = color.RGBA{10, 10, 20, 200}

	HealthIndicatorFullColor     = color.RGBA{50, 205, 50, 255}
	HealthIndicatorWarningColor  = color.RGBA{255, 215, 0, 255}
	HealthIndicatorCriticalColor = color.RGBA{220, 60, 60, 255}
	HealthIndicatorEmptyColor    = color.RGBA{60, 60, 70, 255}

	LaneColors = []color.RGBA{
		{255, 50, 50, 255},
		{50, 255, 50, 255},
		{50, 100, 255, 255},
		{180, 50, 230, 255},
	}
)
