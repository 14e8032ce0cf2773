//go:build linux

package native

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// Evdev is the Linux reference engine. It observes input through the
// kernel evdev layer (/dev/input/eventX), below the display server, so
// it works on X11, Wayland and the console alike, provided the process
// can read the event devices (typically membership in the input group).
//
// Evdev is a tap, not a filter: records pass through regardless of the
// Reserved bit, so SupportsReserve reports false. Posted records are
// echoed back into the dispatch stream; injecting into the kernel
// stream proper needs uinput write access, which most deployments of
// this engine do not have.
type Evdev struct {
	mu       sync.Mutex
	dispatch DispatchFunc
	running  bool
	stopping bool
	epoch    time.Time

	// pointer state accumulated from relative motion events
	px, py int16
	// button currently held, for classifying motion as a drag
	held uint16
	mask uint16
}

// NewEvdev returns an unstarted evdev engine.
func NewEvdev() *Evdev {
	return &Evdev{epoch: time.Now()}
}

// SetDispatch implements Engine.
func (e *Evdev) SetDispatch(fn DispatchFunc) {
	e.mu.Lock()
	e.dispatch = fn
	e.mu.Unlock()
}

// SupportsReserve implements Engine. The evdev layer has no suppression
// mechanism short of EVIOCGRAB, which would starve every other consumer.
func (e *Evdev) SupportsReserve() bool { return false }

func (e *Evdev) uptime() uint64 {
	return uint64(time.Since(e.epoch) / time.Millisecond)
}

func (e *Evdev) emit(rec *Record) {
	e.mu.Lock()
	fn := e.dispatch
	e.mu.Unlock()
	if fn != nil {
		rec.Time = e.uptime()
		fn(rec)
	}
}

// Post implements Engine by echoing the record into the dispatch stream.
func (e *Evdev) Post(rec *Record) {
	e.mu.Lock()
	live := e.running
	e.mu.Unlock()
	if !live {
		return
	}
	cp := *rec
	cp.Reserved = 0
	e.emit(&cp)
}

// Run implements Engine. It opens every discovered keyboard and mouse
// device, emits Enabled, and multiplexes reads with poll(2) until Stop.
func (e *Evdev) Run() error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return &Error{Code: CodeUnknown, Context: "evdev engine already running"}
	}
	e.running = true
	e.stopping = false
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
	}()

	devices, err := findInputDevices()
	if err != nil {
		return &Error{Code: CodeUnknown, Context: err.Error()}
	}
	if len(devices) == 0 {
		return &Error{Code: CodeUnknown, Context: "no readable input devices found"}
	}

	fds := make([]int, 0, len(devices))
	for _, dev := range devices {
		fd, err := unix.Open(dev, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			continue
		}
		fds = append(fds, fd)
	}
	if len(fds) == 0 {
		return &Error{Code: CodeUnknown, Context: "could not open any input device, check input group membership"}
	}
	defer func() {
		for _, fd := range fds {
			unix.Close(fd)
		}
	}()

	e.emit(&Record{Type: TypeHookEnabled})
	defer e.emit(&Record{Type: TypeHookDisabled})

	pollfds := make([]unix.PollFd, len(fds))
	for i, fd := range fds {
		pollfds[i] = unix.PollFd{Fd: int32(fd), Events: unix.POLLIN}
	}

	buf := make([]byte, inputEventSize)
	for {
		e.mu.Lock()
		stopping := e.stopping
		e.mu.Unlock()
		if stopping {
			return nil
		}

		n, err := unix.Poll(pollfds, 200)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return &Error{Code: CodeUnknown, Context: "poll: " + err.Error()}
		}
		if n == 0 {
			continue
		}

		for i := range pollfds {
			if pollfds[i].Revents&unix.POLLIN == 0 {
				continue
			}
			for {
				nr, err := unix.Read(int(pollfds[i].Fd), buf)
				if err != nil || nr < inputEventSize {
					break
				}
				e.handle(parseInputEvent(buf))
			}
		}
	}
}

// Stop implements Engine. The read loop notices the flag within one poll
// interval.
func (e *Evdev) Stop() error {
	e.mu.Lock()
	e.stopping = true
	e.mu.Unlock()
	return nil
}

// Linux input_event on 64-bit: two 8-byte time fields, then type, code,
// value.
const inputEventSize = 24

type inputEvent struct {
	kind  uint16
	code  uint16
	value int32
}

func parseInputEvent(buf []byte) inputEvent {
	return inputEvent{
		kind:  binary.LittleEndian.Uint16(buf[16:18]),
		code:  binary.LittleEndian.Uint16(buf[18:20]),
		value: int32(binary.LittleEndian.Uint32(buf[20:24])),
	}
}

const (
	evKey = 0x01
	evRel = 0x02

	relX      = 0x00
	relY      = 0x01
	relWheel  = 0x08
	relHWheel = 0x06

	btnLeft   = 0x110
	btnRight  = 0x111
	btnMiddle = 0x112
	btnSide   = 0x113
	btnExtra  = 0x114

	keyLeftShift  = 42
	keyRightShift = 54
	keyLeftCtrl   = 29
	keyRightCtrl  = 97
	keyLeftAlt    = 56
	keyRightAlt   = 100
	keyLeftMeta   = 125
	keyRightMeta  = 126
)

// handle translates one kernel event into zero or one dispatch records.
// Modifier state and pointer position are tracked here because evdev
// reports deltas and raw key codes only.
func (e *Evdev) handle(ev inputEvent) {
	switch ev.kind {
	case evKey:
		if ev.code >= btnLeft && ev.code <= btnExtra {
			e.handleButton(ev)
			return
		}
		e.handleKey(ev)
	case evRel:
		e.handleRel(ev)
	}
}

func (e *Evdev) handleKey(ev inputEvent) {
	if ev.value > 1 {
		// autorepeat, the platform hook layer reports these as presses
		ev.value = 1
	}

	e.mu.Lock()
	e.updateMask(ev.code, ev.value == 1)
	mask := e.mask
	e.mu.Unlock()

	typ := TypeKeyReleased
	if ev.value == 1 {
		typ = TypeKeyPressed
	}
	e.emit(&Record{
		Type: typ,
		Mask: mask,
		Keyboard: KeyboardData{
			KeyCode: keyCodeToVC(ev.code),
			RawCode: ev.code,
		},
	})
}

func (e *Evdev) handleButton(ev inputEvent) {
	button := uint16(ev.code-btnLeft) + 1

	e.mu.Lock()
	if ev.value == 1 {
		e.held = button
	} else if e.held == button {
		e.held = 0
	}
	x, y, mask := e.px, e.py, e.mask
	e.mu.Unlock()

	typ := TypeMouseReleased
	if ev.value == 1 {
		typ = TypeMousePressed
	}
	e.emit(&Record{
		Type: typ,
		Mask: mask,
		Mouse: MouseData{
			Button: button,
			Clicks: 1,
			X:      x,
			Y:      y,
		},
	})
}

func (e *Evdev) handleRel(ev inputEvent) {
	switch ev.code {
	case relX, relY:
		e.mu.Lock()
		if ev.code == relX {
			e.px += int16(ev.value)
		} else {
			e.py += int16(ev.value)
		}
		x, y, held, mask := e.px, e.py, e.held, e.mask
		e.mu.Unlock()

		typ := TypeMouseMoved
		if held != 0 {
			typ = TypeMouseDragged
		}
		e.emit(&Record{
			Type:  typ,
			Mask:  mask,
			Mouse: MouseData{Button: held, X: x, Y: y},
		})
	case relWheel, relHWheel:
		e.mu.Lock()
		x, y, mask := e.px, e.py, e.mask
		e.mu.Unlock()

		direction := wheelVertical
		if ev.code == relHWheel {
			direction = wheelHorizontal
		}
		e.emit(&Record{
			Type: TypeMouseWheel,
			Mask: mask,
			Wheel: WheelData{
				Clicks:    1,
				X:         x,
				Y:         y,
				Kind:      wheelUnitScroll,
				Amount:    3,
				Rotation:  int16(-ev.value),
				Direction: direction,
			},
		})
	}
}

const (
	wheelUnitScroll uint8 = 1
	wheelVertical   uint8 = 3
	wheelHorizontal uint8 = 4
)

func (e *Evdev) updateMask(code uint16, pressed bool) {
	var bit uint16
	switch code {
	case keyLeftShift:
		bit = 1 << 0
	case keyLeftCtrl:
		bit = 1 << 1
	case keyLeftMeta:
		bit = 1 << 2
	case keyLeftAlt:
		bit = 1 << 3
	case keyRightShift:
		bit = 1 << 4
	case keyRightCtrl:
		bit = 1 << 5
	case keyRightMeta:
		bit = 1 << 6
	case keyRightAlt:
		bit = 1 << 7
	default:
		return
	}
	if pressed {
		e.mask |= bit
	} else {
		e.mask &^= bit
	}
}

// Kernel key codes match set 1 scancodes for the main block, which is
// also what the portable key codes use, so translation is identity
// except for the extended keys.
var extendedKeys = map[uint16]uint16{
	96:  0x0E1C, // keypad enter
	97:  0x0E1D, // right ctrl
	98:  0x0E35, // keypad divide
	100: 0x0E38, // right alt
	102: 0x0E47, // home
	103: 0xE048, // up
	104: 0x0E49, // page up
	105: 0xE04B, // left
	106: 0xE04D, // right
	107: 0x0E4F, // end
	108: 0xE050, // down
	109: 0x0E51, // page down
	110: 0x0E52, // insert
	111: 0x0E53, // delete
	119: 0x0E45, // pause
	125: 0x0E5B, // left meta
	126: 0x0E5C, // right meta
	127: 0x0E5D, // context menu
}

func keyCodeToVC(code uint16) uint16 {
	if vc, ok := extendedKeys[code]; ok {
		return vc
	}
	return code
}

// findInputDevices scans /proc/bus/input/devices for keyboards and mice,
// skipping virtual devices so the engine does not observe its own echo
// through a display-server loopback.
func findInputDevices() ([]string, error) {
	f, err := os.Open("/proc/bus/input/devices")
	if err != nil {
		return nil, fmt.Errorf("scan input devices: %w", err)
	}
	defer f.Close()

	var devices []string
	var handler, phys string
	var isKeyboard, isMouse bool

	flush := func() {
		if handler != "" && (isKeyboard || isMouse) &&
			!strings.HasPrefix(strings.ToLower(phys), "virtual") {
			devices = append(devices, handler)
		}
		handler, phys = "", ""
		isKeyboard, isMouse = false, false
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "H: Handlers="):
			for _, part := range strings.Fields(line) {
				if strings.HasPrefix(part, "event") {
					handler = "/dev/input/" + part
				}
				if part == "mouse0" || part == "mouse1" || part == "mouse2" {
					isMouse = true
				}
			}
		case strings.HasPrefix(line, "P: Phys="):
			phys = strings.TrimPrefix(line, "P: Phys=")
		case strings.HasPrefix(line, "B: KEY="):
			// keyboards carry a wide key capability bitmap
			if len(line) > 40 {
				isKeyboard = true
			}
		case strings.HasPrefix(line, "B: REL="):
			if !strings.HasSuffix(line, "=0") {
				isMouse = true
			}
		case line == "":
			flush()
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input devices: %w", err)
	}
	return devices, nil
}
