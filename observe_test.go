package gridview

import (
	"math"
	"testing"
)

func TestObserveNotifiesOnChange(t *testing.T) {
	e := newTestEngine(t)

	var got []State
	cancel := e.Observe(func(s State) { got = append(got, s) })
	defer cancel()

	e.UpdateTranslation(Sz(10, 0))
	e.UpdateScale(2, Pt(0, 0))
	e.SetViewportSize(Sz(640, 480))

	if len(got) != 3 {
		t.Fatalf("observer called %d times, want 3", len(got))
	}
	if got[0].Translation != Pt(10, 0) {
		t.Errorf("first notification translation = %v, want (10, 0)", got[0].Translation)
	}
	if got[1].Scale != 2 {
		t.Errorf("second notification scale = %v, want 2", got[1].Scale)
	}
	if got[2].Viewport != Sz(640, 480) {
		t.Errorf("third notification viewport = %v, want (640, 480)", got[2].Viewport)
	}
}

func TestObserveSkipsIgnoredInput(t *testing.T) {
	e := newTestEngine(t)

	calls := 0
	e.Observe(func(State) { calls++ })

	e.UpdateTranslation(Sz(math.NaN(), 0))
	e.UpdateScale(math.Inf(1), Pt(1, 1))
	e.SetViewportSize(Sz(0, 0))
	e.SetViewportSize(Sz(1000, 1000)) // unchanged

	if calls != 0 {
		t.Errorf("observer called %d times for ignored input, want 0", calls)
	}
}

func TestObserveCancel(t *testing.T) {
	e := newTestEngine(t)

	var a, b int
	cancelA := e.Observe(func(State) { a++ })
	e.Observe(func(State) { b++ })

	e.UpdateTranslation(Sz(1, 1))
	cancelA()
	cancelA()
	e.UpdateTranslation(Sz(1, 1))

	if a != 1 {
		t.Errorf("cancelled observer called %d times, want 1", a)
	}
	if b != 2 {
		t.Errorf("remaining observer called %d times, want 2", b)
	}
}

func TestObserveOrder(t *testing.T) {
	e := newTestEngine(t)

	var order []int
	for i := range 3 {
		e.Observe(func(State) { order = append(order, i) })
	}
	e.UpdateTranslation(Sz(1, 0))

	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("observer order = %v, want [0 1 2]", order)
	}
}

func TestObserveNil(t *testing.T) {
	e := newTestEngine(t)
	cancel := e.Observe(nil)
	cancel()
	e.UpdateTranslation(Sz(1, 0))
}
