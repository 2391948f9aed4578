// internal/system/visual_effect.go
package system

// VisualEffectSystem гасит вспышки урона.
type VisualEffectSystem struct {
	world World
}

func NewVisualEffectSystem(world World) *VisualEffectSystem {
	return &VisualEffectSystem{world: world}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	for _, e := range s.world.Level().Entities.All() {
		if e.Render.Flash > 0 {
			e.Render.Flash -= deltaTime
			if e.Render.Flash < 0 {
				e.Render.Flash = 0
			}
		}
	}
}
