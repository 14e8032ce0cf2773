package hook

import (
	"testing"

	"hookwire/native"
)

// bareEngine implements Engine but not Properties.
type bareEngine struct{}

func (bareEngine) SetDispatch(native.DispatchFunc) {}
func (bareEngine) Run() error                      { return nil }
func (bareEngine) Stop() error                     { return nil }
func (bareEngine) Post(*native.Record)             {}
func (bareEngine) SupportsReserve() bool           { return false }

func TestPropertiesThroughSimulator(t *testing.T) {
	sim := native.NewSimulator()
	if err := SetEngine(sim); err != nil {
		t.Fatalf("SetEngine: %v", err)
	}

	if _, ok := AutoRepeatRate(); ok {
		t.Error("absent setting reported as present")
	}

	sim.RepeatRate = 25
	sim.ClickTime = 500
	sim.ScreenList = []native.Screen{{Number: 0, Width: 2560, Height: 1440}}

	if v, ok := AutoRepeatRate(); !ok || v != 25 {
		t.Errorf("AutoRepeatRate = %d, %v", v, ok)
	}
	if v, ok := MultiClickTime(); !ok || v != 500 {
		t.Errorf("MultiClickTime = %d, %v", v, ok)
	}
	if screens := Screens(); len(screens) != 1 || screens[0].Width != 2560 {
		t.Errorf("Screens = %+v", screens)
	}
}

func TestPropertiesWithoutSupport(t *testing.T) {
	if err := SetEngine(bareEngine{}); err != nil {
		t.Fatalf("SetEngine: %v", err)
	}
	t.Cleanup(func() { SetEngine(native.NewSimulator()) })

	if _, ok := PointerSensitivity(); ok {
		t.Error("engine without Properties reported a value")
	}
	if Screens() != nil {
		t.Error("engine without Properties reported screens")
	}
}
