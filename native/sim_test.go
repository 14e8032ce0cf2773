package native

import (
	"errors"
	"testing"
	"time"
)

func runSim(t *testing.T, s *Simulator) chan Record {
	t.Helper()
	out := make(chan Record, 64)
	s.SetDispatch(func(rec *Record) {
		out <- *rec
	})
	done := make(chan error, 1)
	go func() { done <- s.Run() }()

	first := waitRecord(t, out)
	if first.Type != TypeHookEnabled {
		t.Fatalf("first record type = %d, want Enabled", first.Type)
	}
	t.Cleanup(func() {
		s.Stop()
		if err := <-done; err != nil {
			t.Errorf("Run returned %v", err)
		}
	})
	return out
}

func waitRecord(t *testing.T, out chan Record) Record {
	t.Helper()
	select {
	case rec := <-out:
		return rec
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for record")
		return Record{}
	}
}

func TestSimulatorLoopback(t *testing.T) {
	s := NewSimulator()
	out := runSim(t, s)

	s.Post(&Record{
		Type:     TypeKeyPressed,
		Reserved: 0x01,
		Keyboard: KeyboardData{KeyCode: 0x1E},
	})

	rec := waitRecord(t, out)
	if rec.Type != TypeKeyPressed {
		t.Fatalf("type = %d", rec.Type)
	}
	if rec.Keyboard.KeyCode != 0x1E {
		t.Errorf("key code = %#x", rec.Keyboard.KeyCode)
	}
	if rec.Reserved != 0 {
		t.Error("reserved bit survived the post")
	}
}

func TestSimulatorTimestamps(t *testing.T) {
	s := NewSimulator()
	out := runSim(t, s)

	s.Post(&Record{Type: TypeMouseMoved})
	a := waitRecord(t, out)
	time.Sleep(5 * time.Millisecond)
	s.Post(&Record{Type: TypeMouseMoved})
	b := waitRecord(t, out)

	if b.Time < a.Time {
		t.Errorf("timestamps went backwards: %d then %d", a.Time, b.Time)
	}
}

func TestSimulatorStopEmitsDisabled(t *testing.T) {
	s := NewSimulator()
	out := runSim(t, s)

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	rec := waitRecord(t, out)
	if rec.Type != TypeHookDisabled {
		t.Fatalf("type after stop = %d, want Disabled", rec.Type)
	}

	// posts after stop are dropped
	s.Post(&Record{Type: TypeKeyPressed})
	select {
	case rec := <-out:
		t.Fatalf("unexpected record %d after stop", rec.Type)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestSimulatorRestart(t *testing.T) {
	s := NewSimulator()
	for i := 0; i < 3; i++ {
		_ = i
		out := make(chan Record, 8)
		s.SetDispatch(func(rec *Record) { out <- *rec })
		done := make(chan error, 1)
		go func() { done <- s.Run() }()

		if rec := waitRecord(t, out); rec.Type != TypeHookEnabled {
			t.Fatalf("enable record type = %d", rec.Type)
		}
		if err := s.Stop(); err != nil {
			t.Fatalf("Stop: %v", err)
		}
		if rec := waitRecord(t, out); rec.Type != TypeHookDisabled {
			t.Fatalf("disable record type = %d", rec.Type)
		}
		if err := <-done; err != nil {
			t.Fatalf("Run: %v", err)
		}
	}
}

func TestSimulatorFailNextRun(t *testing.T) {
	s := NewSimulator()
	boom := errors.New("boom")
	s.FailNextRun(boom)

	seen := false
	s.SetDispatch(func(*Record) { seen = true })

	if err := s.Run(); !errors.Is(err, boom) {
		t.Fatalf("Run = %v, want injected error", err)
	}
	if seen {
		t.Error("failed run dispatched a record")
	}

	// the failure is one-shot
	done := make(chan error, 1)
	out := make(chan Record, 8)
	s.SetDispatch(func(rec *Record) { out <- *rec })
	go func() { done <- s.Run() }()
	if rec := waitRecord(t, out); rec.Type != TypeHookEnabled {
		t.Fatalf("record type = %d", rec.Type)
	}
	s.Stop()
	if err := <-done; err != nil {
		t.Fatalf("second Run: %v", err)
	}
}

func TestSimulatorReserveSupport(t *testing.T) {
	s := NewSimulator()
	if !s.SupportsReserve() {
		t.Error("default reserve support = false")
	}
	s.SetReserveSupport(false)
	if s.SupportsReserve() {
		t.Error("reserve support not cleared")
	}
}

func TestSimulatorProperties(t *testing.T) {
	s := NewSimulator()
	if v := s.AutoRepeatRate(); v >= 0 {
		t.Errorf("default repeat rate = %d, want negative sentinel", v)
	}
	s.RepeatRate = 25
	if v := s.AutoRepeatRate(); v != 25 {
		t.Errorf("repeat rate = %d", v)
	}
	s.ScreenList = []Screen{{Number: 0, Width: 1920, Height: 1080}}
	if len(s.Screens()) != 1 {
		t.Error("screen list not reported")
	}
}
