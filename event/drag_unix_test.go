//go:build !windows

package event

import "testing"

func TestDragged(t *testing.T) {
	ev := NewMouse(ButtonLeft).Dragged(30, 40)
	if ev.Kind != KindMouseDragged {
		t.Fatalf("kind = %s", ev.Kind)
	}
	if ev.Mouse.X != 30 || ev.Mouse.Y != 40 {
		t.Errorf("target = (%d, %d)", ev.Mouse.X, ev.Mouse.Y)
	}
	if ev.Mouse.Clicks != 1 {
		t.Errorf("clicks = %d, want 1", ev.Mouse.Clicks)
	}
	if !ev.IsSynthetic() {
		t.Error("drag not marked synthetic")
	}
}
