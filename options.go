package carousel

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
)

// ErrInvalidOption is returned for engine options outside their domain.
var ErrInvalidOption = errors.New("carousel: invalid option")

// Option configures an Engine.
type Option func(*Engine) error

// WithAppearance sets the initial appearance.
func WithAppearance(appearance Appearance) Option {
	return func(e *Engine) error {
		if err := appearance.Validate(); err != nil {
			return err
		}
		e.appearance = appearance
		return nil
	}
}

// WithSnapBehavior sets how released drags settle.
func WithSnapBehavior(behavior SnapBehavior) Option {
	return func(e *Engine) error {
		e.snap = behavior
		return nil
	}
}

// WithInfinite enables wraparound scrolling.
func WithInfinite(infinite bool) Option {
	return func(e *Engine) error {
		e.infinite = infinite
		return nil
	}
}

// WithPreloadDistance sets how far outside the viewport items are mounted.
func WithPreloadDistance(distance float64) Option {
	return func(e *Engine) error {
		if distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
			return fmt.Errorf("%w: preload distance %v", ErrInvalidOption, distance)
		}
		e.preload = distance
		return nil
	}
}

// WithVelocityFactor sets the velocity compensation used by hard snapping.
func WithVelocityFactor(factor float64) Option {
	return func(e *Engine) error {
		if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
			return fmt.Errorf("%w: velocity factor %v", ErrInvalidOption, factor)
		}
		e.velocityFactor = factor
		return nil
	}
}

// WithFreeEdges lets finite carousels decelerate past their first and last
// item instead of snapping back.
func WithFreeEdges(free bool) Option {
	return func(e *Engine) error {
		e.freeEdges = free
		return nil
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = log.New(io.Discard, "", 0)
		}
		e.logger = logger
		return nil
	}
}
