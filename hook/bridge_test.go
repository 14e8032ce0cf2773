package hook

import (
	"testing"

	"hookwire/event"
	"hookwire/native"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// timestamps are excluded: encode leaves Time for the engine and
	// decode rebases it
	cases := []event.Event{
		event.NewKeyboard(event.KeyA).WithMask(event.MaskShift).Press(),
		event.NewMouse(event.ButtonRight).WithClicks(2).WithPosition(120, -40).Release(),
		event.NewMouse(event.NoButton).Moved(5, 9),
		event.NewScroll(3, 50, 60).WithRotation(-1).WithKind(event.ScrollBlock).
			WithDirection(event.ScrollHorizontal).WithClicks(1).Build(),
	}
	for _, in := range cases {
		rec := encode(&in)
		out := ctx.decode(&rec)

		if out.Kind != in.Kind {
			t.Errorf("%s: kind = %s", in.Kind, out.Kind)
		}
		if out.Metadata.Mask != in.Metadata.Mask {
			t.Errorf("%s: mask = %v", in.Kind, out.Metadata.Mask)
		}
		if out.Keyboard != in.Keyboard {
			t.Errorf("%s: keyboard payload = %+v", in.Kind, out.Keyboard)
		}
		if out.Mouse != in.Mouse {
			t.Errorf("%s: mouse payload = %+v", in.Kind, out.Mouse)
		}
		if out.Wheel != in.Wheel {
			t.Errorf("%s: wheel payload = %+v", in.Kind, out.Wheel)
		}
	}
}

func TestDecodeUnknownKeyPreserved(t *testing.T) {
	rec := native.Record{
		Type:     native.TypeKeyPressed,
		Keyboard: native.KeyboardData{KeyCode: 0x7ABC},
	}
	ev := ctx.decode(&rec)
	if uint16(ev.Keyboard.Key) != 0x7ABC {
		t.Errorf("unknown key code mangled: %#x", uint16(ev.Keyboard.Key))
	}
	back := encode(&ev)
	if back.Keyboard.KeyCode != 0x7ABC {
		t.Errorf("unknown key code lost on encode: %#x", back.Keyboard.KeyCode)
	}
}

func TestDecodeReservedBit(t *testing.T) {
	rec := native.Record{Type: native.TypeKeyPressed, Reserved: 0x01}
	if ev := ctx.decode(&rec); !ev.IsReserved() {
		t.Error("reserved bit dropped on decode")
	}

	rec.Reserved = 0
	if ev := ctx.decode(&rec); ev.IsReserved() {
		t.Error("reserved set without the bit")
	}
}

func TestRebaseConsistency(t *testing.T) {
	a := ctx.rebase(1000)
	b := ctx.rebase(1250)
	if b-a != 250 {
		t.Errorf("rebase not offset-stable: %d and %d", a, b)
	}
}
