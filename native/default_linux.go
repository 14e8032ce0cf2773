//go:build linux

package native

// Default returns the engine bound when nothing else is configured.
func Default() Engine {
	return NewEvdev()
}
