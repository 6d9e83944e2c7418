package gridview

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by New when an option carries a value the
// engine cannot operate with.
var ErrInvalidConfig = errors.New("gridview: invalid config")

func (o options) validate() error {
	switch {
	case !isFinite(o.baseScale) || o.baseScale <= 0:
		return fmt.Errorf("%w: base scale %v must be finite and positive", ErrInvalidConfig, o.baseScale)
	case !isFinite(o.minLineGap) || o.minLineGap <= 0:
		return fmt.Errorf("%w: min line gap %v must be finite and positive", ErrInvalidConfig, o.minLineGap)
	case !isFinite(o.maxLineGap) || o.maxLineGap < o.minLineGap:
		return fmt.Errorf("%w: max line gap %v must be finite and >= min line gap %v",
			ErrInvalidConfig, o.maxLineGap, o.minLineGap)
	case !isFinite(o.scale) || o.scale <= 0:
		return fmt.Errorf("%w: scale %v must be finite and positive", ErrInvalidConfig, o.scale)
	case !o.translation.IsFinite():
		return fmt.Errorf("%w: translation %v is not finite", ErrInvalidConfig, o.translation)
	case !o.interactionPoint.IsFinite():
		return fmt.Errorf("%w: interaction point %v is not finite", ErrInvalidConfig, o.interactionPoint)
	}
	return nil
}
