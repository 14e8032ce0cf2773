package event

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindEnabled:       "Enabled",
		KindDisabled:      "Disabled",
		KindKeyTyped:      "KeyTyped",
		KindKeyPressed:    "KeyPressed",
		KindKeyReleased:   "KeyReleased",
		KindMouseClicked:  "MouseClicked",
		KindMousePressed:  "MousePressed",
		KindMouseReleased: "MouseReleased",
		KindMouseMoved:    "MouseMoved",
		KindMouseDragged:  "MouseDragged",
		KindWheel:         "MouseWheel",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
	if got := Kind(200).String(); got != "Kind(200)" {
		t.Errorf("unknown kind string = %q", got)
	}
}

func TestClass(t *testing.T) {
	cases := map[Kind]Class{
		KindEnabled:       ClassControl,
		KindDisabled:      ClassControl,
		KindKeyTyped:      ClassKeyboard,
		KindKeyPressed:    ClassKeyboard,
		KindKeyReleased:   ClassKeyboard,
		KindMouseClicked:  ClassMouse,
		KindMousePressed:  ClassMouse,
		KindMouseReleased: ClassMouse,
		KindMouseMoved:    ClassMouse,
		KindMouseDragged:  ClassMouse,
		KindWheel:         ClassWheel,
	}
	for kind, want := range cases {
		ev := Event{Kind: kind}
		if got := ev.Class(); got != want {
			t.Errorf("%s class = %d, want %d", kind, got, want)
		}
	}
}

func TestAccessors(t *testing.T) {
	kb := NewKeyboard(KeyA).Press()
	if _, ok := kb.AsKeyboard(); !ok {
		t.Error("AsKeyboard failed on a key event")
	}
	if _, ok := kb.AsMouse(); ok {
		t.Error("AsMouse succeeded on a key event")
	}

	press := NewMouse(ButtonLeft).Press()
	if m, ok := press.AsMouseButton(); !ok || m.Button != ButtonLeft {
		t.Error("AsMouseButton failed on a press")
	}

	move := NewMouse(NoButton).Moved(10, 20)
	if _, ok := move.AsMouseButton(); ok {
		t.Error("AsMouseButton succeeded on motion")
	}
	if m, ok := move.AsMouse(); !ok || m.X != 10 || m.Y != 20 {
		t.Error("AsMouse failed on motion")
	}

	wheel := NewScroll(3, 0, 0).Build()
	if _, ok := wheel.AsWheel(); !ok {
		t.Error("AsWheel failed on a scroll event")
	}
	if _, ok := kb.AsWheel(); ok {
		t.Error("AsWheel succeeded on a key event")
	}
}

func TestPostable(t *testing.T) {
	for _, kind := range []Kind{KindEnabled, KindDisabled} {
		ev := Event{Kind: kind}
		err := ev.Postable()
		if err == nil {
			t.Fatalf("%s: expected error", kind)
		}
		var npe *NotPostableError
		if !errors.As(err, &npe) {
			t.Fatalf("%s: error type %T", kind, err)
		}
		if npe.Kind != kind {
			t.Errorf("%s: error names %s", kind, npe.Kind)
		}
	}

	ev := NewKeyboard(KeyQ).Press()
	if err := ev.Postable(); err != nil {
		t.Errorf("key press not postable: %v", err)
	}
}

func TestModeFlags(t *testing.T) {
	ev := NewKeyboard(KeyA).Press()
	if !ev.IsSynthetic() {
		t.Error("built event not marked synthetic")
	}
	if ev.IsReserved() {
		t.Error("built event marked reserved")
	}
	ev.Metadata.Mode |= ModeReserved
	if !ev.IsReserved() {
		t.Error("reserved flag not readable")
	}
}

func TestKeyNames(t *testing.T) {
	for _, k := range []Key{KeyEscape, KeyA, KeyF12, KeyNumPad5, KeyLeftMeta} {
		name := k.String()
		back, ok := KeyByName(name)
		if !ok || back != k {
			t.Errorf("name round-trip failed for %s (0x%04X)", name, uint16(k))
		}
	}
	if _, ok := KeyByName("NoSuchKey"); ok {
		t.Error("KeyByName matched a bogus name")
	}
	if got := Key(0x7FFF).String(); got != "Key(0x7FFF)" {
		t.Errorf("unnamed key string = %q", got)
	}
}

func TestAllKeysNamed(t *testing.T) {
	for _, k := range AllKeys() {
		if _, ok := keyNames[k]; !ok {
			t.Errorf("key 0x%04X has no name", uint16(k))
		}
	}
}
