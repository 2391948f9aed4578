package component

import "testing"

func TestHealthDamageClampsAtZero(t *testing.T) {
	h := NewHealth(5)
	if got := h.Damage(2); got != 2 || h.Current != 3 {
		t.Errorf("Damage(2) = %v, current %v", got, h.Current)
	}
	if got := h.Damage(10); got != 3 || h.Current != 0 {
		t.Errorf("overkill Damage = %v, current %v", got, h.Current)
	}
	if !h.Dead() {
		t.Error("expected dead")
	}
	h.Heal()
	if h.Current != 5 || h.Dead() {
		t.Errorf("Heal left %v", h.Current)
	}
	if h.Damage(-1) != 0 {
		t.Error("negative damage must be ignored")
	}
}

func TestHealthMortal(t *testing.T) {
	var treasure Health
	if treasure.Mortal() || treasure.Fraction() != 0 {
		t.Error("zero health must not be mortal")
	}
	if !NewHealth(10).Mortal() {
		t.Error("player health must be mortal")
	}
}

func TestBrainString(t *testing.T) {
	if BrainFireball.String() != "fireball" || Brain(99).String() != "unknown" {
		t.Error("Brain.String")
	}
}
