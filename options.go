package gridview

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Defaults: 25pt lines, gaps between 10 and 500 points, scale 1
//	e, err := gridview.New()
//
//	// A coarser grid that starts zoomed in
//	e, err := gridview.New(gridview.WithBaseScale(4), gridview.WithScale(2))
type Option func(*options)

// options holds the construction-time configuration of an Engine.
type options struct {
	baseScale        float64
	minLineGap       float64
	maxLineGap       float64
	translation      Point
	scale            float64
	interactionPoint Point
}

// Default values used when no option overrides them.
const (
	// BaseLineSpacing is the distance between lines at scale 1 and base scale 1.
	BaseLineSpacing = 25.0

	// DefaultMinLineGap is the smallest rendered line gap, in screen units.
	DefaultMinLineGap = 10.0

	// DefaultMaxLineGap is the largest rendered line gap, in screen units.
	DefaultMaxLineGap = 500.0
)

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		baseScale:  1,
		minLineGap: DefaultMinLineGap,
		maxLineGap: DefaultMaxLineGap,
		scale:      1,
	}
}

// WithBaseScale multiplies the base line spacing. Useful when several grids
// are overlaid with each other at different densities.
func WithBaseScale(s float64) Option {
	return func(o *options) {
		o.baseScale = s
	}
}

// WithLineGapRange bounds the rendered spacing between adjacent lines, in
// screen units. The bounds dictate the legal range of the scale.
func WithLineGapRange(minGap, maxGap float64) Option {
	return func(o *options) {
		o.minLineGap = minGap
		o.maxLineGap = maxGap
	}
}

// WithTranslation sets the initial translation of the grid (not the camera).
func WithTranslation(t Point) Option {
	return func(o *options) {
		o.translation = t
	}
}

// WithScale sets the initial scale.
func WithScale(s float64) Option {
	return func(o *options) {
		o.scale = s
	}
}

// WithInteractionPoint sets the initial zoom anchor.
func WithInteractionPoint(p Point) Option {
	return func(o *options) {
		o.interactionPoint = p
	}
}
