package hook

import (
	"time"

	"hookwire/event"
	"hookwire/native"
)

// The bridge is the only code that touches native records. Decoding and
// encoding are symmetric field copies because the event model reuses the
// native numeric codes; timestamps are the one translated field.

// rebase converts an engine uptime timestamp to milliseconds since the
// Unix epoch. The offset is fixed at the first intercepted event and
// reused for the rest of the process, so timestamps stay mutually
// consistent even if the wall clock steps.
func (c *dispatchContext) rebase(uptime uint64) uint64 {
	c.baseOnce.Do(func() {
		now := uint64(time.Now().UnixMilli())
		c.base = now - uptime
	})
	return c.base + uptime
}

func (c *dispatchContext) decode(rec *native.Record) event.Event {
	ev := event.Event{
		Metadata: event.Metadata{
			Time: c.rebase(rec.Time),
			Mask: event.Mask(rec.Mask),
		},
		Kind: event.Kind(rec.Type),
	}
	if rec.Reserved&0x01 != 0 {
		ev.Metadata.Mode |= event.ModeReserved
	}
	switch ev.Class() {
	case event.ClassKeyboard:
		ev.Keyboard = event.Keyboard{
			Key:  event.Key(rec.Keyboard.KeyCode),
			Raw:  rec.Keyboard.RawCode,
			Char: rec.Keyboard.KeyChar,
		}
	case event.ClassMouse:
		ev.Mouse = event.Mouse{
			Button: event.Button(rec.Mouse.Button),
			Clicks: rec.Mouse.Clicks,
			X:      rec.Mouse.X,
			Y:      rec.Mouse.Y,
		}
	case event.ClassWheel:
		ev.Wheel = event.Wheel{
			Clicks:    rec.Wheel.Clicks,
			X:         rec.Wheel.X,
			Y:         rec.Wheel.Y,
			Scroll:    event.ScrollKind(rec.Wheel.Kind),
			Amount:    rec.Wheel.Amount,
			Rotation:  rec.Wheel.Rotation,
			Direction: event.ScrollDirection(rec.Wheel.Direction),
		}
	}
	return ev
}

func encode(ev *event.Event) native.Record {
	rec := native.Record{
		Type: native.Type(ev.Kind),
		Mask: uint16(ev.Metadata.Mask),
	}
	switch ev.Class() {
	case event.ClassKeyboard:
		rec.Keyboard = native.KeyboardData{
			KeyCode: uint16(ev.Keyboard.Key),
			RawCode: ev.Keyboard.Raw,
			KeyChar: ev.Keyboard.Char,
		}
	case event.ClassMouse:
		rec.Mouse = native.MouseData{
			Button: uint16(ev.Mouse.Button),
			Clicks: ev.Mouse.Clicks,
			X:      ev.Mouse.X,
			Y:      ev.Mouse.Y,
		}
	case event.ClassWheel:
		rec.Wheel = native.WheelData{
			Clicks:    ev.Wheel.Clicks,
			X:         ev.Wheel.X,
			Y:         ev.Wheel.Y,
			Kind:      uint8(ev.Wheel.Scroll),
			Amount:    ev.Wheel.Amount,
			Rotation:  ev.Wheel.Rotation,
			Direction: uint8(ev.Wheel.Direction),
		}
	}
	return rec
}

// onNative is the dispatch callback handed to the engine. It runs on the
// engine's hook thread and must stay fast: decode, tag, filter, enqueue.
func (c *dispatchContext) onNative(rec *native.Record) {
	ev := c.decode(rec)
	c.stats.dispatched.Add(1)

	// Consume the synthetic correlation cell when this event's type
	// matches the last posted one. Losing the race here is accepted, see
	// event.ModeSynthetic.
	if c.synthetic.CompareAndSwap(uint32(tagAlias(rec.Type)), 0) {
		ev.Metadata.Mode |= event.ModeSynthetic
		c.stats.synthetic.Add(1)
	}

	c.reserveMu.Lock()
	filter := c.reserve
	c.reserveMu.Unlock()
	if filter != nil && filter(&ev) && c.bindEngine().SupportsReserve() {
		rec.Reserved |= 0x01
		ev.Metadata.Mode |= event.ModeReserved
		c.stats.reserved.Add(1)
	}

	c.bus.send(ev)
}

// postEvent injects one event through the engine. The post mutex keeps
// injection order equal to call order and makes the synthetic-cell store
// and the engine post one unit.
func postEvent(ev *event.Event) error {
	if err := ev.Postable(); err != nil {
		return err
	}
	eng := ctx.bindEngine()
	rec := encode(ev)

	ctx.postMu.Lock()
	ctx.synthetic.Store(uint32(tagAlias(rec.Type)))
	eng.Post(&rec)
	ctx.postMu.Unlock()

	ctx.stats.posted.Add(1)
	return nil
}
