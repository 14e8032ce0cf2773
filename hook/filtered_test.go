package hook

import (
	"testing"
	"time"

	"hookwire/event"
)

func TestFilteredCloseStopsDelivery(t *testing.T) {
	startSim(t)
	ch := make(chan event.Event, 8)
	f := OnKeys([]event.Key{event.KeyZ}, func(ev *event.Event) {
		ch <- *ev
	})

	if err := PostPair(event.NewKeyboard(event.KeyZ).Pair()); err != nil {
		t.Fatalf("PostPair: %v", err)
	}
	waitEvent(t, ch)
	waitEvent(t, ch)

	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if err := PostPair(event.NewKeyboard(event.KeyZ).Pair()); err != nil {
		t.Fatalf("PostPair: %v", err)
	}
	assertQuiet(t, ch)
}

func TestFilteredReregister(t *testing.T) {
	startSim(t)
	ch := make(chan event.Event, 8)
	f := OnKeyboard(func(ev *event.Event) { ch <- *ev })
	defer f.Close()

	f.Unregister()
	if err := Post(event.NewKeyboard(event.KeyA).Press()); err != nil {
		t.Fatalf("Post: %v", err)
	}
	assertQuiet(t, ch)

	f.Register()
	if err := Post(event.NewKeyboard(event.KeyA).Release()); err != nil {
		t.Fatalf("Post: %v", err)
	}
	ev := waitEvent(t, ch)
	if ev.Kind != event.KindKeyReleased {
		t.Fatalf("kind = %s", ev.Kind)
	}
}

func TestFilteredKeyRouting(t *testing.T) {
	startSim(t)
	matched := make(chan event.Event, 8)
	rest := make(chan event.Event, 8)

	on := OnKeys([]event.Key{event.KeyF1}, func(ev *event.Event) { matched <- *ev })
	defer on.Close()
	not := NotKeys([]event.Key{event.KeyF1}, func(ev *event.Event) { rest <- *ev })
	defer not.Close()

	if err := Post(event.NewKeyboard(event.KeyF1).Press()); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if err := Post(event.NewKeyboard(event.KeyF2).Press()); err != nil {
		t.Fatalf("Post: %v", err)
	}

	if ev := waitEvent(t, matched); ev.Keyboard.Key != event.KeyF1 {
		t.Errorf("matched key = %s", ev.Keyboard.Key)
	}
	if ev := waitEvent(t, rest); ev.Keyboard.Key != event.KeyF2 {
		t.Errorf("complement key = %s", ev.Keyboard.Key)
	}
	assertQuiet(t, matched)
	assertQuiet(t, rest)
}

func TestFilteredMouseRouting(t *testing.T) {
	startSim(t)
	buttons := make(chan event.Event, 8)
	moves := make(chan event.Event, 8)
	wheels := make(chan event.Event, 8)

	fb := OnButtons([]event.Button{event.ButtonLeft}, func(ev *event.Event) { buttons <- *ev })
	defer fb.Close()
	fm := OnMouseMove(func(ev *event.Event) { moves <- *ev })
	defer fm.Close()
	fw := OnWheel(func(ev *event.Event) { wheels <- *ev })
	defer fw.Close()

	if err := Post(event.NewMouse(event.ButtonLeft).Press()); err != nil {
		t.Fatalf("Post press: %v", err)
	}
	if err := Post(event.NewMouse(event.ButtonRight).Press()); err != nil {
		t.Fatalf("Post press: %v", err)
	}
	if err := Post(event.NewMouse(event.NoButton).Moved(10, 10)); err != nil {
		t.Fatalf("Post move: %v", err)
	}
	if err := Post(event.NewScroll(3, 0, 0).WithRotation(1).Build()); err != nil {
		t.Fatalf("Post scroll: %v", err)
	}

	if ev := waitEvent(t, buttons); ev.Mouse.Button != event.ButtonLeft {
		t.Errorf("button = %s", ev.Mouse.Button)
	}
	assertQuiet(t, buttons)

	if ev := waitEvent(t, moves); ev.Kind != event.KindMouseMoved {
		t.Errorf("move kind = %s", ev.Kind)
	}
	if ev := waitEvent(t, wheels); ev.Kind != event.KindWheel {
		t.Errorf("wheel kind = %s", ev.Kind)
	}
}

func TestObserverCanUnregisterItself(t *testing.T) {
	startSim(t)
	seen := make(chan event.Event, 8)
	var f *Filtered
	f = OnKeyboard(func(ev *event.Event) {
		seen <- *ev
		f.Unregister()
	})
	defer f.Close()

	if err := PostPair(event.NewKeyboard(event.KeyX).Pair()); err != nil {
		t.Fatalf("PostPair: %v", err)
	}
	waitEvent(t, seen)
	// the release was posted but the observer removed itself first
	time.Sleep(10 * time.Millisecond)
	assertQuiet(t, seen)
}
