package component

// Health — компонент здоровья
type Health struct {
	Current float64
	Max     float64
}

// NewHealth создаёт полное здоровье
func NewHealth(max float64) Health {
	return Health{Current: max, Max: max}
}

// Damage уменьшает здоровье, не опуская его ниже нуля, и возвращает фактический урон.
func (h *Health) Damage(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	if amount > h.Current {
		amount = h.Current
	}
	h.Current -= amount
	return amount
}

// Heal восстанавливает здоровье до максимума.
func (h *Health) Heal() {
	h.Current = h.Max
}

// Dead: здоровье исчерпано.
func (h Health) Dead() bool {
	return h.Current <= 0
}

// Mortal: у сущности вообще есть здоровье (у сокровищ его нет).
func (h Health) Mortal() bool {
	return h.Max > 0
}

// Fraction возвращает долю оставшегося здоровья в [0,1].
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}
