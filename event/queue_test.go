package event

import (
	"testing"

	"github.com/lixenwraith/townhold/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventEnemySpawned, Tick: 1})
	q.Push(GameEvent{Type: EventStructureHit, Tick: 2})

	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}

	events := q.Consume()
	if len(events) != 2 {
		t.Fatalf("got %d events", len(events))
	}
	if events[0].Type != EventEnemySpawned || events[1].Type != EventStructureHit {
		t.Errorf("order wrong: %v, %v", events[0].Type, events[1].Type)
	}
	if q.Len() != 0 || q.Consume() != nil {
		t.Error("queue should be empty after consume")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventStructureHit, Tick: int64(i)})
	}

	if q.Len() != parameter.EventQueueSize {
		t.Fatalf("Len = %d, want %d", q.Len(), parameter.EventQueueSize)
	}

	events := q.Consume()
	if events[0].Tick != 10 {
		t.Errorf("oldest kept tick = %d, want 10", events[0].Tick)
	}
	if events[len(events)-1].Tick != int64(total-1) {
		t.Errorf("newest tick = %d, want %d", events[len(events)-1].Tick, total-1)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventTownHallBreached.String() != "TownHallBreached" {
		t.Errorf("got %q", EventTownHallBreached.String())
	}
	if EventType(999).String() != "Unknown" {
		t.Errorf("got %q", EventType(999).String())
	}
	if RejectUnaffordable.String() != "unaffordable" {
		t.Errorf("got %q", RejectUnaffordable.String())
	}
}
