//go:build windows

package event

// Dragged expands to a fixed three-event sequence: press at the origin,
// move to (x, y), release at the origin.
//
// Windows has no native drag event, so a synthetic drag can only be
// produced by pressing, moving and releasing; the OS then reports the
// motion as a drag. This shape divergence mirrors a genuine capability
// gap in the platform, not an implementation choice, which is also why
// synthetic tagging treats drag and move as the same type on Windows.
func (b MouseBuilder) Dragged(x, y int16) []Event {
	b.data = b.data.clicked()

	ends := Mouse{Button: b.data.Button, Clicks: b.data.Clicks}
	moved := b.data
	moved.X = x
	moved.Y = y

	return []Event{
		{Metadata: b.meta, Kind: KindMousePressed, Mouse: ends},
		{Metadata: b.meta, Kind: KindMouseMoved, Mouse: moved},
		{Metadata: b.meta, Kind: KindMouseReleased, Mouse: ends},
	}
}
