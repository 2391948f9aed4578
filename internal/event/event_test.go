package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := NewDispatcher()
	combat := &recorder{}
	notes := &recorder{}
	d.Subscribe(CombatStarted, combat)
	d.Subscribe(NoteJudged, notes)

	d.Dispatch(Event{Type: NoteJudged, Data: NoteResult{Lane: 1, Score: 0.5}})

	if len(combat.got) != 0 {
		t.Errorf("combat listener got %d events", len(combat.got))
	}
	if len(notes.got) != 1 {
		t.Fatalf("note listener got %d events", len(notes.got))
	}
	if res, ok := notes.got[0].Data.(NoteResult); !ok || res.Lane != 1 {
		t.Errorf("unexpected payload %#v", notes.got[0].Data)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(EntityRemoved, r)
	d.Unsubscribe(EntityRemoved, r)
	d.Dispatch(Event{Type: EntityRemoved})
	if len(r.got) != 0 {
		t.Errorf("unsubscribed listener received %d events", len(r.got))
	}
}

func TestQueueDeliversOnFlush(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(TreasureCollected, r)

	d.Queue(Event{Type: TreasureCollected, Data: 1})
	d.Queue(Event{Type: TreasureCollected, Data: 2})
	if len(r.got) != 0 {
		t.Fatal("queued events must wait for Flush")
	}
	if d.Pending() != 2 {
		t.Errorf("Pending = %d", d.Pending())
	}

	d.Flush()
	if len(r.got) != 2 || r.got[0].Data != 1 || r.got[1].Data != 2 {
		t.Errorf("unexpected delivery %#v", r.got)
	}
	if d.Pending() != 0 {
		t.Errorf("queue not drained")
	}
}
