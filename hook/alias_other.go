//go:build !windows

package hook

import "hookwire/native"

// tagAlias is the identity outside Windows; drags are a native event
// type of their own and correlate directly.
func tagAlias(t native.Type) native.Type {
	return t
}
