package engine

import (
	"github.com/Carmen-Shannon/oxy-spectator/engine/camera"
	"github.com/Carmen-Shannon/oxy-spectator/engine/profiler"
	"github.com/Carmen-Shannon/oxy-spectator/engine/window"
	"github.com/sirupsen/logrus"
)

// EngineBuilderOption is a functional option for configuring an Engine.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables periodic profiler reports.
//
// Parameters:
//   - enabled: if true, the profiler is ticked with the engine
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled.Store(enabled)
	}
}

// WithProfiler replaces the default profiler.
//
// Parameters:
//   - p: a configured profiler
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// Values <= 0 are treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate = tickInterval(fps)
	}
}

// WithMaxDelta caps the delta time passed to the tick callback. 0 disables the cap.
//
// Parameters:
//   - seconds: largest delta in seconds (default 0.25)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMaxDelta(seconds float32) EngineBuilderOption {
	return func(e *engine) {
		e.maxDelta = seconds
	}
}

// WithWindow attaches a window. Without one the engine runs headless.
//
// Parameters:
//   - w: a created Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithCamera registers a camera whose aspect ratio follows the window's framebuffer size.
//
// Parameters:
//   - c: the camera to keep in sync
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithLogger sets the logger used for engine lifecycle messages and the default profiler.
//
// Parameters:
//   - logger: the logger (nil is ignored)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger *logrus.Logger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
