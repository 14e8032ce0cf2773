package hook

import "hookwire/native"

// System input properties, read through the engine when it implements
// native.Properties. Every accessor returns ok=false when the engine
// does not expose properties at all or the platform does not expose the
// particular setting.

func properties() (native.Properties, bool) {
	p, ok := ctx.bindEngine().(native.Properties)
	return p, ok
}

func property(get func(native.Properties) int64) (uint64, bool) {
	p, ok := properties()
	if !ok {
		return 0, false
	}
	v := get(p)
	if v < 0 {
		return 0, false
	}
	return uint64(v), true
}

// AutoRepeatRate returns the keyboard auto-repeat rate.
func AutoRepeatRate() (uint64, bool) {
	return property(native.Properties.AutoRepeatRate)
}

// AutoRepeatDelay returns the delay before auto-repeat starts.
func AutoRepeatDelay() (uint64, bool) {
	return property(native.Properties.AutoRepeatDelay)
}

// PointerAccelerationMultiplier returns the pointer acceleration
// multiplier.
func PointerAccelerationMultiplier() (uint64, bool) {
	return property(native.Properties.PointerAccelerationMultiplier)
}

// PointerAccelerationThreshold returns the speed above which pointer
// acceleration applies.
func PointerAccelerationThreshold() (uint64, bool) {
	return property(native.Properties.PointerAccelerationThreshold)
}

// PointerSensitivity returns the pointer sensitivity setting.
func PointerSensitivity() (uint64, bool) {
	return property(native.Properties.PointerSensitivity)
}

// MultiClickTime returns the double-click interval in milliseconds.
func MultiClickTime() (uint64, bool) {
	return property(native.Properties.MultiClickTime)
}

// Screens returns the monitor layout, or nil when the engine cannot
// report it.
func Screens() []native.Screen {
	if p, ok := properties(); ok {
		return p.Screens()
	}
	return nil
}
