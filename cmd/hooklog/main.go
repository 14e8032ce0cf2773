// hooklog - Log global keyboard and mouse events to the console and,
// optionally, a SQLite database.
//
//	hooklog                     Run with the default config
//	hooklog -config FILE        Run with a specific config file
//	hooklog -record PATH        Record events to a SQLite database
//	hooklog -metrics            Dump metrics on exit
//
// The config file hot-reloads: edits to the observe and reserve
// sections take effect without a restart. The daemon exits on the
// configured exit key (Escape by default), SIGINT or SIGTERM.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"hookwire/event"
	"hookwire/hook"
	"hookwire/internal/config"
	"hookwire/internal/logging"
	"hookwire/internal/metrics"
	"hookwire/internal/recorder"
)

func main() {
	var (
		configPath  = flag.String("config", "", "config file path (default: platform config dir)")
		recordPath  = flag.String("record", "", "record events to this SQLite database")
		dumpMetrics = flag.Bool("metrics", false, "print metrics on exit")
	)
	flag.Parse()

	if err := run(*configPath, *recordPath, *dumpMetrics); err != nil {
		fmt.Fprintf(os.Stderr, "hooklog: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, recordPath string, dumpMetrics bool) error {
	if configPath == "" {
		configPath = config.ConfigPath()
	}
	loader := config.NewLoader(configPath)
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	defer loader.Close()

	log, err := buildLogger(&cfg.Logging)
	if err != nil {
		return err
	}
	logging.SetDefault(log)
	defer log.Close()

	if recordPath != "" {
		cfg.Record.Enabled = true
		cfg.Record.Path = recordPath
	}

	var rec *recorder.Recorder
	if cfg.Record.Enabled {
		rec, err = recorder.Open(cfg.Record.Path)
		if err != nil {
			return err
		}
		defer rec.Close()
		log.Info("recording events", "path", cfg.Record.Path)
	}

	pipeline := metrics.NewPipeline()

	d := &daemon{
		log:  log,
		rec:  rec,
		done: make(chan struct{}),
	}
	d.apply(cfg)

	loader.OnChange(func(newCfg *config.Config) {
		log.Info("config reloaded", "path", configPath)
		d.apply(newCfg)
	})
	if err := loader.Watch(); err != nil {
		log.Warn("config watch unavailable", "error", err)
	}

	observer := hook.Register(d.observe)
	defer hook.Unregister(observer)
	pipeline.Observers.Inc()

	handle, ok := hook.Start()
	if !ok {
		return fmt.Errorf("hook already running")
	}
	log.Info("hook running", "engine_reserve", hook.CurrentEngine().SupportsReserve())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		log.Info("signal received", "signal", sig.String())
	case <-d.done:
		log.Info("exit key pressed")
	}

	if err := handle.Stop(); err != nil {
		return fmt.Errorf("stop hook: %w", err)
	}

	pipeline.Sync()
	if rec != nil {
		if n, err := rec.Count(); err == nil {
			pipeline.Recorded.Set(n)
		}
	}
	if dumpMetrics {
		fmt.Print(pipeline.Registry.String())
	}
	log.Info("stopped", "dispatched", hook.CurrentStats().Dispatched)
	return nil
}

func buildLogger(lc *config.LogConfig) (*logging.Logger, error) {
	level, err := logging.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(lc.Format)
	if err != nil {
		return nil, err
	}
	return logging.New(&logging.Config{
		Level:     level,
		Format:    format,
		Output:    lc.Output,
		FilePath:  lc.FilePath,
		Component: "hooklog",
	})
}

// daemon holds the hot-reloadable observation settings.
type daemon struct {
	log *logging.Logger
	rec *recorder.Recorder

	done     chan struct{}
	doneOnce sync.Once

	mu          sync.RWMutex
	obs         config.ObserveConfig
	observeKeys map[event.Key]bool
	exitKey     event.Key
	hasExitKey  bool
}

// apply installs a validated config: observation filters here, the
// reservation filter in the shared pipeline.
func (d *daemon) apply(cfg *config.Config) {
	observeKeys := map[event.Key]bool(nil)
	if len(cfg.Observe.Keys) > 0 {
		keys, _ := config.ParseKeys(cfg.Observe.Keys)
		observeKeys = make(map[event.Key]bool, len(keys))
		for _, k := range keys {
			observeKeys[k] = true
		}
	}

	var exitKey event.Key
	hasExitKey := cfg.Observe.ExitKey != ""
	if hasExitKey {
		exitKey, _ = config.ParseKey(cfg.Observe.ExitKey)
	}

	d.mu.Lock()
	d.obs = cfg.Observe
	d.observeKeys = observeKeys
	d.exitKey = exitKey
	d.hasExitKey = hasExitKey
	d.mu.Unlock()

	d.applyReserve(&cfg.Reserve)
}

func (d *daemon) applyReserve(rc *config.ReserveConfig) {
	if !rc.Synthetic && len(rc.Keys) == 0 {
		hook.Reserve(nil)
		return
	}
	reserveKeys := make(map[event.Key]bool, len(rc.Keys))
	keys, _ := config.ParseKeys(rc.Keys)
	for _, k := range keys {
		reserveKeys[k] = true
	}
	synthetic := rc.Synthetic
	hook.Reserve(func(ev *event.Event) bool {
		if synthetic && ev.IsSynthetic() {
			return true
		}
		kb, ok := ev.AsKeyboard()
		return ok && reserveKeys[kb.Key]
	})
}

// observe is the registered observer; it runs on the control goroutine.
func (d *daemon) observe(ev *event.Event) {
	d.mu.RLock()
	obs := d.obs
	observeKeys := d.observeKeys
	exitKey := d.exitKey
	hasExitKey := d.hasExitKey
	d.mu.RUnlock()

	if hasExitKey && ev.Kind == event.KindKeyPressed && ev.Keyboard.Key == exitKey {
		d.doneOnce.Do(func() { close(d.done) })
		return
	}

	if !d.wants(&obs, observeKeys, ev) {
		return
	}

	d.logEvent(ev)
	if d.rec != nil {
		if _, err := d.rec.Record(ev); err != nil {
			d.log.Warn("record event", "error", err)
		}
	}
}

func (d *daemon) wants(obs *config.ObserveConfig, keys map[event.Key]bool, ev *event.Event) bool {
	switch ev.Class() {
	case event.ClassControl:
		return true
	case event.ClassKeyboard:
		if !obs.Keyboard {
			return false
		}
		if keys != nil {
			return keys[ev.Keyboard.Key]
		}
		return true
	case event.ClassWheel:
		return obs.Wheel
	default:
		if ev.Kind == event.KindMouseMoved || ev.Kind == event.KindMouseDragged {
			return obs.Motion
		}
		return obs.Mouse
	}
}

func (d *daemon) logEvent(ev *event.Event) {
	attrs := []any{
		"kind", ev.Kind.String(),
		"time", ev.Metadata.Time,
		"synthetic", ev.IsSynthetic(),
	}
	if ev.IsReserved() {
		attrs = append(attrs, "reserved", true)
	}
	switch ev.Class() {
	case event.ClassKeyboard:
		attrs = append(attrs, "key", ev.Keyboard.Key.String(), "raw", ev.Keyboard.Raw)
	case event.ClassMouse:
		attrs = append(attrs, "button", ev.Mouse.Button.String(),
			"x", ev.Mouse.X, "y", ev.Mouse.Y)
	case event.ClassWheel:
		attrs = append(attrs, "rotation", ev.Wheel.Rotation,
			"x", ev.Wheel.X, "y", ev.Wheel.Y)
	}
	d.log.Info("event", attrs...)
}
