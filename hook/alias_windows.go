//go:build windows

package hook

import "hookwire/native"

// tagAlias folds drags into moves for synthetic correlation. Windows has
// no native drag event: a posted move lands as a drag when a button is
// held, so the cell must match across the two types or tagging would
// always miss.
func tagAlias(t native.Type) native.Type {
	if t == native.TypeMouseDragged {
		return native.TypeMouseMoved
	}
	return t
}
