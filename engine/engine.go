package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-spectator/engine/camera"
	"github.com/Carmen-Shannon/oxy-spectator/engine/profiler"
	"github.com/Carmen-Shannon/oxy-spectator/engine/window"
	"github.com/sirupsen/logrus"
)

// engine implements the Engine interface.
// Window events run on the main thread and ticks on their own goroutine.
type engine struct {
	tickRateChannel chan time.Duration

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once

	window window.Window
	camera camera.Camera
	logger *logrus.Logger

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	engineTickRate time.Duration
	maxDelta       float32
	tickCallback   func(deltaTime float32)
	frameCallback  func()
}

// Engine runs the fixed-rate tick loop that advances the simulation and, when a window is
// attached, the window message loop that delivers input.
type Engine interface {
	// Window returns the attached window, or nil for a headless engine.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Profiler returns the profiler ticked by the engine loop so callers can add probes.
	//
	// Returns:
	//   - *profiler.Profiler: the engine profiler
	Profiler() *profiler.Profiler

	// EnableProfiler enables periodic profiler reports.
	EnableProfiler()

	// DisableProfiler disables periodic profiler reports.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	// Takes effect immediately if the engine is running.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick.
	// Must be set before Run.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds since the previous tick
	SetTickCallback(callback func(deltaTime float32))

	// SetFrameCallback registers the function called on the main thread after each window poll.
	// Must be set before Run.
	//
	// Parameters:
	//   - callback: function to call each message loop iteration
	SetFrameCallback(callback func())

	// Run starts the engine. With a window it blocks until the window closes or Quit is called;
	// headless it blocks until Quit is called. Must be called from the main goroutine.
	Run()

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times and from any goroutine.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (window, tick rate, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		logger:          logrus.StandardLogger(),
		engineTickRate:  time.Second / 60,
		maxDelta:        0.25,
	}

	for _, opt := range options {
		opt(e)
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))
	}

	if e.window != nil {
		if e.camera != nil {
			e.camera.SetAspect(e.window.AspectRatio())
		}
		e.window.SetResizeCallback(func(width, height int) {
			if e.camera != nil && width > 0 && height > 0 {
				e.camera.SetAspect(float32(width) / float32(height))
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

func (e *engine) Run() {
	e.running.Store(true)
	e.wg.Add(1)
	go e.handleEngine()

	if e.window != nil {
		e.window.SetUpdateCallback(e.handleFrame)
		e.window.ProcessMessages()
		e.signalQuit()
	} else {
		<-e.quitChannel
	}
	e.wg.Wait()
	e.logger.Debug("engine stopped")
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.quitChannel)
	})
}

// handleFrame runs on the main thread after every window poll. It closes the window once
// quit has been signalled so ProcessMessages returns.
func (e *engine) handleFrame() {
	select {
	case <-e.quitChannel:
		if err := e.window.Close(); err != nil {
			e.logger.WithError(err).Warn("failed to close window")
		}
		return
	default:
	}
	if e.frameCallback != nil {
		e.frameCallback()
	}
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Delta time is capped at maxDelta so a stalled process does not fling the camera.
// A panic in the tick callback is logged and stops the engine.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			e.logger.WithField("panic", r).Error("engine tick recovered from panic")
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			if e.maxDelta > 0 && dt > e.maxDelta {
				dt = e.maxDelta
			}

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
			if e.profilingEnabled.Load() {
				e.profiler.Tick()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)

	if !e.running.Load() {
		e.engineTickRate = newRate
		return
	}
	// Replace any pending update that the loop has not picked up yet.
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetFrameCallback(callback func()) {
	e.frameCallback = callback
}

// tickInterval converts a tick rate to a ticker period, defaulting to 60 ticks per second.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
