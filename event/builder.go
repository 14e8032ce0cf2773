package event

// Builders construct synthetic events in two steps: pick the input device
// (Keyboard / Mouse / Scroll), then chain configuration and finish with a
// terminal constructor (Press, Release, Pair, Moved, Dragged, Build).
// Every built event carries ModeSynthetic from the start; time, the
// reserved bit and (for real engines) the mask are assigned elsewhere, so
// builders never touch them beyond the optional combination mask.

// NewKeyboard starts building a keyboard event affecting key. Raw and
// Char are pre-populated from the key code, matching what engines report
// for synthetic key events.
func NewKeyboard(key Key) KeyboardBuilder {
	return KeyboardBuilder{
		meta: Metadata{Mode: ModeSynthetic},
		data: Keyboard{Key: key, Raw: uint16(key), Char: uint16(key)},
	}
}

// NewMouse starts building a mouse event affecting button.
func NewMouse(button Button) MouseBuilder {
	return MouseBuilder{
		meta: Metadata{Mode: ModeSynthetic},
		data: Mouse{Button: button},
	}
}

// NewScroll starts building a mouse wheel event at (x, y). amount is the
// OS granularity field; kind defaults to unit scrolling and direction to
// vertical.
func NewScroll(amount uint16, x, y int16) WheelBuilder {
	return WheelBuilder{
		meta: Metadata{Mode: ModeSynthetic},
		data: Wheel{
			X:         x,
			Y:         y,
			Scroll:    ScrollUnit,
			Amount:    amount,
			Direction: ScrollVertical,
		},
	}
}

// Pair holds a press and a release of the same logical input.
//
// Posting a Pair is all-or-nothing with respect to admission: if either
// half is not postable, nothing is posted. There is no atomicity against
// native-level interleaving once posting begins.
type Pair struct {
	Press   Event
	Release Event
}

// Validate checks that both halves of the pair are postable.
func (p *Pair) Validate() error {
	if err := p.Press.Postable(); err != nil {
		return err
	}
	return p.Release.Postable()
}

// ValidateSequence checks every pair up front; if any pair fails, the
// whole sequence must not be posted.
func ValidateSequence(pairs []Pair) error {
	for i := range pairs {
		if err := pairs[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// KeyboardBuilder builds key events.
type KeyboardBuilder struct {
	meta Metadata
	data Keyboard
}

// WithMask sets the combination mask, e.g. MaskLeftControl when building
// the C of a Ctrl-C.
func (b KeyboardBuilder) WithMask(mask Mask) KeyboardBuilder {
	b.meta.Mask = mask
	return b
}

// Press finishes the builder as a KeyPressed event.
func (b KeyboardBuilder) Press() Event {
	return Event{Metadata: b.meta, Kind: KindKeyPressed, Keyboard: b.data}
}

// Release finishes the builder as a KeyReleased event.
func (b KeyboardBuilder) Release() Event {
	return Event{Metadata: b.meta, Kind: KindKeyReleased, Keyboard: b.data}
}

// Pair finishes the builder as a press/release pair.
func (b KeyboardBuilder) Pair() Pair {
	return Pair{Press: b.Press(), Release: b.Release()}
}

// MouseBuilder builds mouse button and motion events.
type MouseBuilder struct {
	meta Metadata
	data Mouse
}

// WithMask sets the combination mask.
func (b MouseBuilder) WithMask(mask Mask) MouseBuilder {
	b.meta.Mask = mask
	return b
}

// WithClicks sets the click count. Press, Release, Pair and Dragged
// normalize the count to at least 1.
func (b MouseBuilder) WithClicks(clicks uint16) MouseBuilder {
	b.data.Clicks = clicks
	return b
}

// WithPosition sets the screen coordinates for button events. Moved and
// Dragged take coordinates directly.
func (b MouseBuilder) WithPosition(x, y int16) MouseBuilder {
	b.data.X = x
	b.data.Y = y
	return b
}

func (d Mouse) clicked() Mouse {
	if d.Clicks < 1 {
		d.Clicks = 1
	}
	return d
}

// Press finishes the builder as a MousePressed event.
func (b MouseBuilder) Press() Event {
	return Event{Metadata: b.meta, Kind: KindMousePressed, Mouse: b.data.clicked()}
}

// Release finishes the builder as a MouseReleased event.
func (b MouseBuilder) Release() Event {
	return Event{Metadata: b.meta, Kind: KindMouseReleased, Mouse: b.data.clicked()}
}

// Pair finishes the builder as a press/release pair.
func (b MouseBuilder) Pair() Pair {
	return Pair{Press: b.Press(), Release: b.Release()}
}

// Moved finishes the builder as a MouseMoved event at (x, y).
func (b MouseBuilder) Moved(x, y int16) Event {
	b.data.X = x
	b.data.Y = y
	return Event{Metadata: b.meta, Kind: KindMouseMoved, Mouse: b.data}
}

// WheelBuilder builds scroll events.
type WheelBuilder struct {
	meta Metadata
	data Wheel
}

// WithMask sets the combination mask.
func (b WheelBuilder) WithMask(mask Mask) WheelBuilder {
	b.meta.Mask = mask
	return b
}

// WithClicks sets the click count.
func (b WheelBuilder) WithClicks(clicks uint16) WheelBuilder {
	b.data.Clicks = clicks
	return b
}

// WithKind sets unit or block scrolling.
func (b WheelBuilder) WithKind(kind ScrollKind) WheelBuilder {
	b.data.Scroll = kind
	return b
}

// WithRotation sets the scroll rotation: negative for up/left, positive
// for down/right.
func (b WheelBuilder) WithRotation(rotation int16) WheelBuilder {
	b.data.Rotation = rotation
	return b
}

// WithDirection sets the scroll axis.
func (b WheelBuilder) WithDirection(direction ScrollDirection) WheelBuilder {
	b.data.Direction = direction
	return b
}

// Build finishes the builder as a MouseWheel event.
func (b WheelBuilder) Build() Event {
	return Event{Metadata: b.meta, Kind: KindWheel, Wheel: b.data}
}
