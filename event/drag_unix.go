//go:build !windows

package event

// Dragged finishes the builder as a single MouseDragged event at (x, y).
//
// Windows has no native drag event, so this method has a different shape
// there: it expands to a press/move/release slice. See drag_windows.go.
func (b MouseBuilder) Dragged(x, y int16) Event {
	b.data = b.data.clicked()
	b.data.X = x
	b.data.Y = y
	return Event{Metadata: b.meta, Kind: KindMouseDragged, Mouse: b.data}
}
