package piechart

// LabelPosition is a hint for the automatic positioning of labels on
// the chart. It selects the radius label anchors are placed at.
type LabelPosition int

const (
	// LabelInside positions labels inside the pie, halfway between the
	// center and the rim.
	LabelInside LabelPosition = iota
	// LabelOutside positions labels just outside the rim.
	LabelOutside
	// LabelCenter positions labels at the center, for manual offsetting
	// with WithLabelOffset.
	LabelCenter
)

// chromeMargin is the fixed margin subtracted from the derived radius so
// the chart clears the edges of its view box.
const chromeMargin = 30.0

// config is an immutable snapshot of the chart configuration for one
// computation. It is built once per Compute call from the defaults and
// the supplied options, and never mutated afterwards.
type config struct {
	viewboxWidth  float64
	viewboxHeight float64
	padding       float64

	center    Point
	hasCenter bool
	radius    float64
	hasRadius bool

	startAngle float64

	total        float64
	hasTotal     bool
	showRatio    float64
	hasShowRatio bool

	donut      bool
	donutWidth float64

	showLabels         bool
	labelPosition      LabelPosition
	labelOffset        float64
	labels             []string
	labelInterpolation func(float64) string
}

// defaultConfig returns the default chart configuration.
func defaultConfig() config {
	return config{
		viewboxWidth:  600,
		viewboxHeight: 400,
		donutWidth:    40,
		showLabels:    true,
		labelPosition: LabelInside,
	}
}

// Option configures a chart computation.
// Use functional options to customize Compute behavior.
//
// Example:
//
//	// Defaults: 600x400 view box, solid pie, inside labels
//	layout, err := piechart.Compute(series)
//
//	// Donut gauge
//	layout, err := piechart.Compute(series,
//		piechart.WithDonut(),
//		piechart.WithStartAngle(-90),
//		piechart.WithShowRatio(0.5),
//	)
type Option func(*config)

// WithViewBox sets the view box dimensions the chart is laid out in.
// The default is 600x400. The chart center and radius derive from the
// view box unless overridden with WithCenter / WithRadius.
func WithViewBox(width, height float64) Option {
	return func(c *config) {
		c.viewboxWidth = width
		c.viewboxHeight = height
	}
}

// WithPadding sets the padding between the chart and the view box edge.
// The default is 0.
func WithPadding(padding float64) Option {
	return func(c *config) {
		c.padding = padding
	}
}

// WithCenter overrides the derived chart center.
func WithCenter(center Point) Option {
	return func(c *config) {
		c.center = center
		c.hasCenter = true
	}
}

// WithRadius overrides the derived outer radius.
func WithRadius(radius float64) Option {
	return func(c *config) {
		c.radius = radius
		c.hasRadius = true
	}
}

// WithStartAngle sets the angle the first slice starts at, in degrees.
// The default is 0 (twelve o'clock).
func WithStartAngle(degrees float64) Option {
	return func(c *config) {
		c.startAngle = degrees
	}
}

// WithTotal sets an explicit series total. Spans are computed against it
// instead of the natural sum, leaving part of the circle empty when the
// series sums to less. Useful for gauge charts. A total smaller than the
// natural sum is ignored in favor of the sum.
func WithTotal(total float64) Option {
	return func(c *config) {
		c.total = total
		c.hasTotal = true
	}
}

// WithShowRatio sets the fraction of the circle the series should
// occupy, from 0.0001 to 1.0 (0% to 100%). Takes precedence over
// WithTotal. Useful for gauge charts.
func WithShowRatio(ratio float64) Option {
	return func(c *config) {
		c.showRatio = ratio
		c.hasShowRatio = true
	}
}

// WithDonut draws ring segments instead of solid wedges.
func WithDonut() Option {
	return func(c *config) {
		c.donut = true
	}
}

// WithDonutWidth sets the width of each donut ring segment. The default
// is 40. A width at or above the radius collapses the ring hole; the
// inner radius clamps to zero and the slice renders as a solid wedge.
func WithDonutWidth(width float64) Option {
	return func(c *config) {
		c.donutWidth = width
	}
}

// WithLabels supplies explicit label text, paired with series entries by
// index.
func WithLabels(labels []string) Option {
	return func(c *config) {
		c.labels = labels
	}
}

// WithLabelPosition sets the label placement strategy. The default is
// LabelInside.
func WithLabelPosition(position LabelPosition) Option {
	return func(c *config) {
		c.labelPosition = position
	}
}

// WithLabelOffset sets an extra radial offset for label anchors,
// relative to the radius the position strategy selects.
func WithLabelOffset(offset float64) Option {
	return func(c *config) {
		c.labelOffset = offset
	}
}

// WithLabelInterpolation sets the function used to format generated
// labels from raw series values. Ignored when explicit labels are
// supplied. The default formats the value with the shortest decimal
// representation that round-trips.
func WithLabelInterpolation(format func(float64) string) Option {
	return func(c *config) {
		c.labelInterpolation = format
	}
}

// WithoutLabels disables generated labels. Slices still render;
// explicit labels supplied with WithLabels are kept.
func WithoutLabels() Option {
	return func(c *config) {
		c.showLabels = false
	}
}

// labelRadius returns the radius label anchors are placed at for the
// configured position strategy.
func (c *config) labelRadius(radius float64) float64 {
	switch c.labelPosition {
	case LabelOutside:
		return radius + c.labelOffset
	case LabelCenter:
		return c.labelOffset
	default:
		return radius/2 + c.labelOffset
	}
}
