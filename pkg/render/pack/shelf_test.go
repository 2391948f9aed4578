package pack

import "testing"

func TestShelfFillsRowsLeftToRight(t *testing.T) {
	s := NewShelf(10, 10, 1)

	steps := []struct {
		w, h   int
		wantX  int
		wantY  int
		wantOK bool
	}{
		{4, 3, 0, 0, true},
		{4, 2, 5, 0, true},
		{3, 3, 0, 4, true}, // новая полка под самым высоким элементом
		{6, 3, 4, 4, true},
		{2, 3, 0, 8, false},
	}
	for i, st := range steps {
		x, y, ok := s.Place(st.w, st.h)
		if ok != st.wantOK || (ok && (x != st.wantX || y != st.wantY)) {
			t.Errorf("step %d: Place(%d,%d) = (%d,%d,%v), want (%d,%d,%v)",
				i, st.w, st.h, x, y, ok, st.wantX, st.wantY, st.wantOK)
		}
	}
}

func TestShelfRejectsOversize(t *testing.T) {
	s := NewShelf(8, 8, 0)
	if _, _, ok := s.Place(9, 1); ok {
		t.Error("wider than the sheet must fail")
	}
	if _, _, ok := s.Place(0, 3); ok {
		t.Error("empty rectangle must fail")
	}
	if x, y, ok := s.Place(8, 8); !ok || x != 0 || y != 0 {
		t.Error("exact fit must succeed")
	}
}
