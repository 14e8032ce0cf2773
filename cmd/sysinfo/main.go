// sysinfo - Print the input-related system properties the native engine
// can report: auto-repeat, pointer acceleration, double-click time and
// monitor layout. Settings the platform does not expose print as
// "unavailable".
package main

import (
	"fmt"

	"hookwire/hook"
)

func main() {
	printProp("auto-repeat rate", hook.AutoRepeatRate)
	printProp("auto-repeat delay", hook.AutoRepeatDelay)
	printProp("pointer acceleration multiplier", hook.PointerAccelerationMultiplier)
	printProp("pointer acceleration threshold", hook.PointerAccelerationThreshold)
	printProp("pointer sensitivity", hook.PointerSensitivity)
	printProp("multi-click time", hook.MultiClickTime)

	screens := hook.Screens()
	if len(screens) == 0 {
		fmt.Println("screens: unavailable")
		return
	}
	for _, s := range screens {
		fmt.Printf("screen %d: %dx%d at (%d, %d)\n",
			s.Number, s.Width, s.Height, s.X, s.Y)
	}
}

func printProp(name string, get func() (uint64, bool)) {
	if v, ok := get(); ok {
		fmt.Printf("%s: %d\n", name, v)
		return
	}
	fmt.Printf("%s: unavailable\n", name)
}
