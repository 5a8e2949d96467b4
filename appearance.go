package carousel

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAppearance is returned when an Appearance would produce degenerate
// or inverted geometry.
var ErrInvalidAppearance = errors.New("carousel: invalid appearance")

// Dimension selects the viewport dimension the center item width is relative
// to.
type Dimension uint8

const (
	// DimensionWidth sizes the center item relative to the viewport width.
	DimensionWidth Dimension = iota
	// DimensionHeight sizes the center item relative to the viewport height
	// minus the vertical insets.
	DimensionHeight
)

// Transform describes how side items are drawn.
type Transform struct {
	Alpha     float64
	SizeRatio float64
}

// CenterWidth is the width of the centered item as a fraction of one viewport
// dimension.
type CenterWidth struct {
	Ratio     float64
	Dimension Dimension
}

// Insets are additional margins around the item row.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Appearance is the visual configuration of a carousel. It is a value type
// and is always replaced as a whole.
type Appearance struct {
	SideItemTransform Transform
	CenterItemWidth   CenterWidth
	ItemSpacing       float64
	AdditionalInsets  Insets
}

// DefaultAppearance returns the appearance used when none is configured.
func DefaultAppearance() Appearance {
	return Appearance{
		SideItemTransform: Transform{Alpha: 1, SizeRatio: 0.88},
		CenterItemWidth:   CenterWidth{Ratio: 0.63, Dimension: DimensionWidth},
		ItemSpacing:       10,
	}
}

// Validate reports whether the appearance can be laid out.
func (a Appearance) Validate() error {
	values := []float64{
		a.SideItemTransform.Alpha,
		a.SideItemTransform.SizeRatio,
		a.CenterItemWidth.Ratio,
		a.ItemSpacing,
		a.AdditionalInsets.Top,
		a.AdditionalInsets.Left,
		a.AdditionalInsets.Bottom,
		a.AdditionalInsets.Right,
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value", ErrInvalidAppearance)
		}
	}

	switch {
	case a.SideItemTransform.SizeRatio <= 0:
		return fmt.Errorf("%w: side item size ratio %v must be positive", ErrInvalidAppearance, a.SideItemTransform.SizeRatio)
	case a.SideItemTransform.Alpha < 0:
		return fmt.Errorf("%w: side item alpha %v must not be negative", ErrInvalidAppearance, a.SideItemTransform.Alpha)
	case a.CenterItemWidth.Ratio <= 0:
		return fmt.Errorf("%w: center item ratio %v must be positive", ErrInvalidAppearance, a.CenterItemWidth.Ratio)
	case a.ItemSpacing < 0:
		return fmt.Errorf("%w: item spacing %v must not be negative", ErrInvalidAppearance, a.ItemSpacing)
	case a.AdditionalInsets.Top < 0 || a.AdditionalInsets.Left < 0 ||
		a.AdditionalInsets.Bottom < 0 || a.AdditionalInsets.Right < 0:
		return fmt.Errorf("%w: insets must not be negative", ErrInvalidAppearance)
	}

	if a.CenterItemWidth.Dimension != DimensionWidth && a.CenterItemWidth.Dimension != DimensionHeight {
		return fmt.Errorf("%w: unknown dimension %d", ErrInvalidAppearance, a.CenterItemWidth.Dimension)
	}
	return nil
}

// SnapBehavior controls where a released drag comes to rest.
type SnapBehavior uint8

const (
	// SnapHard moves exactly one item in the direction of the release
	// velocity.
	SnapHard SnapBehavior = iota
	// SnapSoft settles on the item closest to where momentum would stop.
	SnapSoft
	// SnapNone leaves the momentum target untouched.
	SnapNone
)

// String returns the configuration name of the behavior.
func (s SnapBehavior) String() string {
	switch s {
	case SnapHard:
		return "hard"
	case SnapSoft:
		return "soft"
	case SnapNone:
		return "none"
	}
	return fmt.Sprintf("SnapBehavior(%d)", uint8(s))
}

// ParseSnapBehavior parses "hard", "soft" or "none".
func ParseSnapBehavior(s string) (SnapBehavior, error) {
	switch s {
	case "hard", "":
		return SnapHard, nil
	case "soft":
		return SnapSoft, nil
	case "none":
		return SnapNone, nil
	}
	return SnapHard, fmt.Errorf("%w: unknown snap behavior %q", ErrInvalidOption, s)
}
