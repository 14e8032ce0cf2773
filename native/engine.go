// Package native defines the contract between the library and a platform
// hooking engine: the wire Record an engine produces and consumes, the
// Engine interface with its two blocking entry points, the closed error
// taxonomy engines report through, and two engine implementations (a
// loopback Simulator and, on Linux, an evdev-backed reference engine).
//
// The engine owns hook installation, interception and permission handling.
// Everything above this package treats it as an external collaborator
// reachable only through the hook package's bridge.
package native

// Type is a native event type code.
type Type uint32

const (
	TypeHookEnabled  Type = 1
	TypeHookDisabled Type = 2

	TypeKeyTyped    Type = 3
	TypeKeyPressed  Type = 4
	TypeKeyReleased Type = 5

	TypeMouseClicked  Type = 6
	TypeMousePressed  Type = 7
	TypeMouseReleased Type = 8
	TypeMouseMoved    Type = 9
	TypeMouseDragged  Type = 10

	TypeMouseWheel Type = 11
)

// KeyboardData is the keyboard portion of a Record.
type KeyboardData struct {
	KeyCode uint16
	RawCode uint16
	KeyChar uint16
}

// MouseData is the mouse portion of a Record.
type MouseData struct {
	Button uint16
	Clicks uint16
	X      int16
	Y      int16
}

// WheelData is the scroll portion of a Record.
type WheelData struct {
	Clicks    uint16
	X         int16
	Y         int16
	Kind      uint8
	Amount    uint16
	Rotation  int16
	Direction uint8
}

// Record is the raw event structure exchanged with the engine. The engine
// populates exactly one of the payload fields per its Type. Time is
// milliseconds of engine uptime, not epoch time; Reserved carries the
// reservation bit back to the engine from the dispatch callback.
type Record struct {
	Type     Type
	Time     uint64
	Mask     uint16
	Reserved uint16

	Keyboard KeyboardData
	Mouse    MouseData
	Wheel    WheelData
}

// DispatchFunc receives every record the engine intercepts. It runs in
// the engine's own hook context and must return quickly; some platforms
// discard events or disable the hook when the callback stalls. The record
// is only valid for the duration of the call.
type DispatchFunc func(*Record)

// Engine is the platform hooking engine contract.
type Engine interface {
	// SetDispatch installs the callback invoked for every intercepted
	// event. Must be called before Run.
	SetDispatch(fn DispatchFunc)

	// Run installs the platform hook and blocks until Stop is called or
	// installation fails. The engine emits a TypeHookEnabled record once
	// the hook is live and a TypeHookDisabled record when it winds down.
	Run() error

	// Stop asks the engine to tear down the hook. It does not wait for
	// Run to return.
	Stop() error

	// Post injects a synthetic record into the platform input stream. The
	// engine assigns its own timestamp at dispatch time; Time and
	// Reserved on the passed record are ignored.
	Post(rec *Record)

	// SupportsReserve reports whether setting Record.Reserved in the
	// dispatch callback actually suppresses propagation on this platform.
	SupportsReserve() bool
}

// Screen describes one monitor.
type Screen struct {
	Number uint8
	X      int16
	Y      int16
	Width  uint16
	Height uint16
}

// Properties is implemented by engines that can report system input
// settings. Accessors return a negative value when the platform does not
// expose the setting; the hook package translates that into an absent
// result.
type Properties interface {
	AutoRepeatRate() int64
	AutoRepeatDelay() int64
	PointerAccelerationMultiplier() int64
	PointerAccelerationThreshold() int64
	PointerSensitivity() int64
	MultiClickTime() int64
	Screens() []Screen
}
