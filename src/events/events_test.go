package events

import (
	"boardeditor/src/base"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPointerDispatchByKind(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.OnPointer(PointerDown, func(ev PointerEvent) { got = append(got, "down1:"+ev.Kind.String()) })
	bus.OnPointer(PointerDown, func(ev PointerEvent) { got = append(got, "down2") })
	bus.OnPointer(PointerUp, func(ev PointerEvent) { got = append(got, "up") })

	bus.Down(base.Point{X: 1, Y: 2})
	bus.Move(base.Point{X: 3, Y: 4})
	bus.Up(base.Point{X: 5, Y: 6})

	want := []string{"down1:down", "down2", "up"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dispatch mismatch (-want +got):\n%s", diff)
	}
}

func TestPointerCarriesPosition(t *testing.T) {
	bus := NewBus()
	var got PointerEvent
	bus.OnPointer(PointerMove, func(ev PointerEvent) { got = ev })
	bus.Move(base.Point{X: 12.5, Y: 40})

	want := PointerEvent{Kind: PointerMove, Pos: base.Point{X: 12.5, Y: 40}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestChangeListeners(t *testing.T) {
	bus := NewBus()
	var first, second []ChangeEvent
	bus.OnChange(func(ev ChangeEvent) { first = append(first, ev) })
	bus.OnChange(func(ev ChangeEvent) { second = append(second, ev) })

	ev := ChangeEvent{Kind: PieceMoved, From: 12, To: 20, Piece: base.BPawn}
	bus.PublishChange(ev)

	want := []ChangeEvent{ev}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("first listener mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, second); diff != "" {
		t.Errorf("second listener mismatch (-want +got):\n%s", diff)
	}
}

func TestNilBusPublishChange(t *testing.T) {
	var bus *Bus
	bus.PublishChange(ChangeEvent{Kind: BoardCleared})
}

func TestKindStrings(t *testing.T) {
	if PieceMoved.String() != "piece moved" || DragReverted.String() != "drag reverted" {
		t.Errorf("unexpected change kind names")
	}
	if PointerKind(9).String() != "unknown" || ChangeKind(99).String() != "unknown" {
		t.Errorf("unknown kinds not reported")
	}
}
