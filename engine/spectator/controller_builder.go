package spectator

import (
	"github.com/Carmen-Shannon/oxy-spectator/engine/input"
	"github.com/sirupsen/logrus"
)

// ControllerOption is a functional option for configuring a SpectatorController.
type ControllerOption func(*spectatorControllerImpl)

// WithLookSpeed sets the angular gain applied to pointer motion.
//
// Parameters:
//   - speed: look speed (default 0.005)
//
// Returns:
//   - ControllerOption: functional option to set the look speed
func WithLookSpeed(speed float32) ControllerOption {
	return func(sc *spectatorControllerImpl) {
		sc.settings.lookSpeed = speed
	}
}

// WithMoveSpeed sets the base movement speed in units per tick-unit.
// The same value caps the velocity length, sprinting included.
//
// Parameters:
//   - speed: move speed (default 50)
//
// Returns:
//   - ControllerOption: functional option to set the move speed
func WithMoveSpeed(speed float32) ControllerOption {
	return func(sc *spectatorControllerImpl) {
		sc.settings.moveSpeed = speed
	}
}

// WithFriction sets the factor the velocity is multiplied by each tick.
// Values are not validated; a friction of 1 or more never decelerates.
//
// Parameters:
//   - friction: decay factor, normally in [0, 1) (default 0.9)
//
// Returns:
//   - ControllerOption: functional option to set the friction
func WithFriction(friction float32) ControllerOption {
	return func(sc *spectatorControllerImpl) {
		sc.settings.friction = friction
	}
}

// WithSprintMultiplier sets the factor applied to injected speed while sprint is held.
//
// Parameters:
//   - multiplier: sprint factor (default 2)
//
// Returns:
//   - ControllerOption: functional option to set the sprint multiplier
func WithSprintMultiplier(multiplier float32) ControllerOption {
	return func(sc *spectatorControllerImpl) {
		sc.settings.sprintMultiplier = multiplier
	}
}

// WithKeyMapping merges bindings over the current mapping (the default scheme unless an earlier
// option changed it). Entries with the zero Action remove the binding for that key.
//
// Parameters:
//   - mapping: key bindings to merge
//
// Returns:
//   - ControllerOption: functional option to merge key bindings
func WithKeyMapping(mapping KeyMapping) ControllerOption {
	return func(sc *spectatorControllerImpl) {
		for code, action := range mapping {
			sc.input.remapKey(code, action)
		}
	}
}

// WithInputSource sets the platform input source the controller subscribes to while enabled.
//
// Parameters:
//   - source: the input source
//
// Returns:
//   - ControllerOption: functional option to set the input source
func WithInputSource(source input.Source) ControllerOption {
	return func(sc *spectatorControllerImpl) {
		sc.source = source
	}
}

// WithLogger sets the logger used for lifecycle and remap messages.
//
// Parameters:
//   - logger: the logger (default logrus.StandardLogger())
//
// Returns:
//   - ControllerOption: functional option to set the logger
func WithLogger(logger *logrus.Logger) ControllerOption {
	return func(sc *spectatorControllerImpl) {
		if logger != nil {
			sc.logger = logger
		}
	}
}
