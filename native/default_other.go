//go:build !linux

package native

// Default returns the engine bound when nothing else is configured. On
// platforms without a reference engine this is the loopback simulator,
// so the pipeline remains usable for development and testing.
func Default() Engine {
	return NewSimulator()
}
