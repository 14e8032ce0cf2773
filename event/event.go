// Package event defines the typed model for keyboard and mouse input
// events: metadata shared by every event, the closed set of event kinds,
// the per-kind payloads, and the fluent builders used to construct
// synthetic events for posting.
//
// Events are plain values. Decoding from and encoding to the native
// engine's wire records, as well as actually posting events, live in the
// hook package; this package carries no side effects.
package event

import "fmt"

// Mode is a bit-set describing how an event came to be.
type Mode uint16

const (
	// ModeReserved marks an event that will not be propagated to the rest
	// of the operating system's UI stack. It can only be set through the
	// reservation filter, and only on engines that support reservation.
	ModeReserved Mode = 1 << 0

	// ModeSynthetic marks an event that originated from this library's
	// posting API rather than from user hardware. The tag is best-effort:
	// it is correlated by event type in a narrow window, so an OS event of
	// the same type arriving at exactly the wrong moment can steal or lose
	// the tag. This inaccuracy is part of the contract.
	ModeSynthetic Mode = 1 << 1
)

// Reserved reports whether the reserved bit is set.
func (m Mode) Reserved() bool { return m&ModeReserved != 0 }

// Synthetic reports whether the synthetic bit is set.
func (m Mode) Synthetic() bool { return m&ModeSynthetic != 0 }

// Metadata carries the fields shared by all event kinds.
type Metadata struct {
	// Time is the event timestamp in milliseconds since the Unix epoch.
	// The native engine reports uptime-relative times; the hook package
	// rebases them to epoch time on decode.
	Time uint64

	// Mask tags the combination the event participates in, e.g. a held
	// Ctrl during another keypress. Only "special" keys and mouse buttons
	// contribute to masks; ordinary letter keys pressed together do not.
	Mask Mask

	// Mode holds the reserved/synthetic flags.
	Mode Mode
}

// Kind identifies the specific kind of input event. The numeric values
// are the native engine's event type codes.
type Kind uint8

const (
	// KindEnabled and KindDisabled are control events emitted by the
	// engine when the hook activates and deactivates. They are never
	// user-constructible and can never be posted.
	KindEnabled  Kind = 1
	KindDisabled Kind = 2

	KindKeyTyped    Kind = 3
	KindKeyPressed  Kind = 4
	KindKeyReleased Kind = 5

	KindMouseClicked  Kind = 6
	KindMousePressed  Kind = 7
	KindMouseReleased Kind = 8
	KindMouseMoved    Kind = 9
	KindMouseDragged  Kind = 10

	KindWheel Kind = 11
)

// String returns the conventional name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEnabled:
		return "Enabled"
	case KindDisabled:
		return "Disabled"
	case KindKeyTyped:
		return "KeyTyped"
	case KindKeyPressed:
		return "KeyPressed"
	case KindKeyReleased:
		return "KeyReleased"
	case KindMouseClicked:
		return "MouseClicked"
	case KindMousePressed:
		return "MousePressed"
	case KindMouseReleased:
		return "MouseReleased"
	case KindMouseMoved:
		return "MouseMoved"
	case KindMouseDragged:
		return "MouseDragged"
	case KindWheel:
		return "MouseWheel"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Class is a coarser grouping of Kind.
type Class uint8

const (
	ClassControl Class = iota
	ClassKeyboard
	ClassMouse
	ClassWheel
)

// Keyboard is the payload shared by the key event kinds.
//
// The fields are not always fully populated; this mirrors the native
// engine's behavior rather than hiding it. A physical keypress usually
// produces three events:
//
//   - KeyPressed: Key and Raw are populated, Char holds a junk value.
//   - KeyTyped: Key is usually KeyUndefined, Raw and Char are correct.
//   - KeyReleased: all three fields are populated.
type Keyboard struct {
	// Key labels the physical key position using an English layout. The
	// value identifies the key itself, not the character: typing "א" on a
	// Hebrew layout reports KeyT. Codes without a named constant decode
	// as-is, so unknown positions are preserved.
	Key Key
	// Raw is the platform code for the key.
	Raw uint16
	// Char is the character actually typed, as a UTF-16 code unit.
	Char uint16
}

// Mouse is the payload shared by the mouse button and motion kinds.
type Mouse struct {
	// Button is the affected button, or NoButton for pure motion.
	Button Button
	// Clicks counts clicks in the event: 0 for motion, 1 for a press,
	// 2 for a double click.
	Clicks uint16
	// X, Y are screen coordinates.
	X int16
	Y int16
}

// Wheel is the payload of scroll events.
type Wheel struct {
	Clicks uint16
	X      int16
	Y      int16
	// Scroll distinguishes unit from block scrolling; set by the platform.
	Scroll ScrollKind
	// Amount is an OS-defined granularity constant attached to each
	// scroll event; it carries little meaning on its own.
	Amount uint16
	// Rotation is negative when scrolling up/left and positive when
	// scrolling down/right.
	Rotation int16
	// Direction is vertical for almost all mice, horizontal where the
	// hardware supports it.
	Direction ScrollDirection
}

// Event is the unit of communication for the whole library. Exactly one
// of Keyboard, Mouse, Wheel is meaningful, selected by Kind; control
// events carry no payload.
type Event struct {
	Metadata Metadata
	Kind     Kind

	Keyboard Keyboard
	Mouse    Mouse
	Wheel    Wheel
}

// Class returns the coarse grouping of the event's kind.
func (e *Event) Class() Class {
	switch e.Kind {
	case KindEnabled, KindDisabled:
		return ClassControl
	case KindKeyTyped, KindKeyPressed, KindKeyReleased:
		return ClassKeyboard
	case KindWheel:
		return ClassWheel
	default:
		return ClassMouse
	}
}

// IsSynthetic reports whether the event was (best-effort) attributed to
// this library's posting API. See Mode for the accuracy caveat.
func (e *Event) IsSynthetic() bool { return e.Metadata.Mode.Synthetic() }

// IsReserved reports whether the event was withheld from the OS UI stack.
func (e *Event) IsReserved() bool { return e.Metadata.Mode.Reserved() }

// AsKeyboard returns the keyboard payload if the event is a key event.
func (e *Event) AsKeyboard() (*Keyboard, bool) {
	switch e.Kind {
	case KindKeyTyped, KindKeyPressed, KindKeyReleased:
		return &e.Keyboard, true
	}
	return nil, false
}

// AsMouse returns the mouse payload for any mouse button or motion event.
func (e *Event) AsMouse() (*Mouse, bool) {
	switch e.Kind {
	case KindMouseClicked, KindMousePressed, KindMouseReleased,
		KindMouseMoved, KindMouseDragged:
		return &e.Mouse, true
	}
	return nil, false
}

// AsMouseButton returns the mouse payload only for button events
// (clicked, pressed, released), excluding motion.
func (e *Event) AsMouseButton() (*Mouse, bool) {
	switch e.Kind {
	case KindMouseClicked, KindMousePressed, KindMouseReleased:
		return &e.Mouse, true
	}
	return nil, false
}

// AsWheel returns the wheel payload if the event is a scroll event.
func (e *Event) AsWheel() (*Wheel, bool) {
	if e.Kind == KindWheel {
		return &e.Wheel, true
	}
	return nil, false
}

// NotPostableError reports an attempt to post a control event. Enabled
// and Disabled are internal to the dispatch lifecycle; use the hook
// package's Start and Stop instead.
type NotPostableError struct {
	Kind Kind
}

func (e *NotPostableError) Error() string {
	return fmt.Sprintf("event: cannot post control event %s; use hook.Start/hook.Stop to control the pipeline", e.Kind)
}

// Postable returns nil if the event may be posted, or a NotPostableError
// for the control kinds.
func (e *Event) Postable() error {
	switch e.Kind {
	case KindEnabled, KindDisabled:
		return &NotPostableError{Kind: e.Kind}
	}
	return nil
}
