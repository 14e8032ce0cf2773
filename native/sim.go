package native

import (
	"sync"
	"time"
)

// Simulator is a loopback engine. It installs no platform hook; instead,
// every posted record is fed straight back through the dispatch callback,
// stamped with an uptime timestamp the way a real engine would stamp it.
// Run emits the Enabled record and blocks until Stop, which emits
// Disabled.
//
// The simulator drives the pipeline tests and serves as the fallback
// Default engine on platforms without a reference engine. Reservation
// support and the reported system properties are configurable so tests
// can cover both the supported and unsupported paths.
type Simulator struct {
	mu       sync.Mutex
	dispatch DispatchFunc
	running  bool
	stop     chan struct{}
	epoch    time.Time
	reserve  bool
	runErr   error

	// System properties reported through the Properties interface.
	// Negative values mean "not exposed by the platform".
	RepeatRate      int64
	RepeatDelay     int64
	AccelMultiplier int64
	AccelThreshold  int64
	Sensitivity     int64
	ClickTime       int64
	ScreenList      []Screen
}

// NewSimulator returns a simulator that supports reservation and exposes
// no system properties.
func NewSimulator() *Simulator {
	return &Simulator{
		epoch:           time.Now(),
		reserve:         true,
		RepeatRate:      -1,
		RepeatDelay:     -1,
		AccelMultiplier: -1,
		AccelThreshold:  -1,
		Sensitivity:     -1,
		ClickTime:       -1,
	}
}

// SetReserveSupport toggles whether the simulator claims reservation
// support, for exercising the unsupported-platform path.
func (s *Simulator) SetReserveSupport(ok bool) {
	s.mu.Lock()
	s.reserve = ok
	s.mu.Unlock()
}

// FailNextRun makes the next Run call return err immediately without
// emitting Enabled, for exercising installation-failure handling.
func (s *Simulator) FailNextRun(err error) {
	s.mu.Lock()
	s.runErr = err
	s.mu.Unlock()
}

// SetDispatch implements Engine.
func (s *Simulator) SetDispatch(fn DispatchFunc) {
	s.mu.Lock()
	s.dispatch = fn
	s.mu.Unlock()
}

// SupportsReserve implements Engine.
func (s *Simulator) SupportsReserve() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reserve
}

func (s *Simulator) uptime() uint64 {
	return uint64(time.Since(s.epoch) / time.Millisecond)
}

func (s *Simulator) emit(rec *Record) {
	s.mu.Lock()
	fn := s.dispatch
	live := s.running
	s.mu.Unlock()
	if fn != nil && live {
		rec.Time = s.uptime()
		fn(rec)
	}
}

// Run implements Engine. It blocks until Stop.
func (s *Simulator) Run() error {
	s.mu.Lock()
	if err := s.runErr; err != nil {
		s.runErr = nil
		s.mu.Unlock()
		return err
	}
	if s.running {
		s.mu.Unlock()
		return &Error{Code: CodeUnknown, Context: "simulator already running"}
	}
	s.running = true
	s.stop = make(chan struct{})
	stop := s.stop
	s.mu.Unlock()

	s.emit(&Record{Type: TypeHookEnabled})
	<-stop
	return nil
}

// Stop implements Engine. The Disabled record is emitted before Run is
// released so the winddown order matches real engines.
func (s *Simulator) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	stop := s.stop
	s.mu.Unlock()

	s.emit(&Record{Type: TypeHookDisabled})

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
	close(stop)
	return nil
}

// Post implements Engine by looping the record back through the dispatch
// callback. Posts made while the hook is not running are dropped, like a
// real injection into an input stream nobody is observing.
func (s *Simulator) Post(rec *Record) {
	cp := *rec
	cp.Reserved = 0
	s.emit(&cp)
}

// Properties implementation.

func (s *Simulator) AutoRepeatRate() int64                { return s.RepeatRate }
func (s *Simulator) AutoRepeatDelay() int64               { return s.RepeatDelay }
func (s *Simulator) PointerAccelerationMultiplier() int64 { return s.AccelMultiplier }
func (s *Simulator) PointerAccelerationThreshold() int64  { return s.AccelThreshold }
func (s *Simulator) PointerSensitivity() int64            { return s.Sensitivity }
func (s *Simulator) MultiClickTime() int64                { return s.ClickTime }
func (s *Simulator) Screens() []Screen                    { return s.ScreenList }
