package piechart

import (
	"log/slog"
	"math"
)

// overlapDegrees is the anti-seam correction: every slice after the
// first starts its drawn arc slightly before the mathematical boundary
// so anti-aliasing cannot open a hairline gap between neighbors. The
// correction applies to the drawn arc only; angle bookkeeping and label
// midpoints use the uncorrected boundary, so it never compounds.
const overlapDegrees = 0.4

// fullCircleDegrees is the largest span a single drawn arc may cover. A
// full 360-degree arc has coincident endpoints, which arc primitives
// cannot distinguish from an empty arc.
const fullCircleDegrees = 359.99

// Slice describes the geometry of one non-zero series entry.
type Slice struct {
	// Index is the zero-based position among emitted slices. Zero
	// entries do not advance it.
	Index int
	// StartAngle and EndAngle are the slice's angular boundaries in
	// degrees, before the anti-seam correction. Their difference is the
	// slice's proportional share of the circle.
	StartAngle float64
	EndAngle   float64
	// Path is the slice outline: a wedge to the center, or a closed
	// ring segment for donut charts.
	Path *Path
	// ColorValue is the red-channel value of the default palette,
	// ColorForIndex(Index).
	ColorValue float64
	// Fill is the default fill color, FillForIndex(Index).
	Fill RGBA
}

// Label is one label anchor, order-aligned with the input series.
type Label struct {
	// At is the anchor point. Undefined when Suppressed is true.
	At Point
	// Text is the resolved label text.
	Text string
	// Suppressed marks a zero series entry: no label is drawn for it.
	Suppressed bool
}

// Layout is the computed chart geometry. It is a pure function of the
// series and options: identical inputs produce identical layouts,
// including byte-identical path strings.
type Layout struct {
	// Center and Radius are the resolved chart circle.
	Center Point
	Radius float64
	// LabelRadius is the radius label anchors were placed at.
	LabelRadius float64
	// ValuesTotal is the resolved denominator the spans were computed
	// against.
	ValuesTotal float64
	// Slices holds one entry per non-zero series value, in series
	// order.
	Slices []Slice
	// Labels holds one entry per series value, in series order. Nil
	// when labels are disabled and no explicit labels were supplied.
	Labels []Label
}

// Compute lays out a pie or donut chart for the given series. The
// series is required and must be non-empty; values may be zero or
// negative (negatives are clamped to zero and zero entries produce no
// slice). The computation is stateless and side-effect-free.
func Compute(series []float64, opts ...Option) (*Layout, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	center := Pt(cfg.viewboxWidth/2, cfg.viewboxHeight/2)
	if cfg.hasCenter {
		center = cfg.center
	}
	radius := math.Min(center.X, center.Y) - chromeMargin - cfg.padding
	if cfg.hasRadius {
		radius = cfg.radius
	}
	if radius <= 0 {
		Logger().Warn("piechart: non-positive radius, chart is degenerate",
			slog.Float64("radius", radius))
	}

	normalized := normalizeSeries(series)
	valuesTotal := resolveTotal(normalized, series, &cfg)
	if valuesTotal <= 0 {
		Logger().Warn("piechart: non-positive resolved total, no visible slices",
			slog.Float64("valuesTotal", valuesTotal))
	}

	innerRadius := radius - cfg.donutWidth
	if cfg.donut && innerRadius <= 0 {
		Logger().Warn("piechart: donut width at or above radius, drawing solid wedges",
			slog.Float64("radius", radius),
			slog.Float64("donutWidth", cfg.donutWidth))
		innerRadius = 0
	}

	layout := &Layout{
		Center:      center,
		Radius:      radius,
		LabelRadius: cfg.labelRadius(radius),
		ValuesTotal: valuesTotal,
		Slices:      make([]Slice, 0, len(series)),
	}

	wantLabels := cfg.showLabels || cfg.labels != nil
	var anchors []Label
	if wantLabels {
		anchors = make([]Label, 0, len(series))
	}

	// Two angles are threaded through the walk: currentAngle is the
	// bookkeeping boundary the proportions and label midpoints are
	// computed from, drawnStart is the corrected angle the arc is
	// actually drawn from.
	currentAngle := cfg.startAngle
	sliceIndex := 0

	for _, v := range normalized {
		if v == 0 {
			if wantLabels {
				anchors = append(anchors, Label{Suppressed: true})
			}
			continue
		}

		endAngle := 0.0
		if valuesTotal > 0 {
			endAngle = currentAngle + v/valuesTotal*360
		}

		drawnStart := currentAngle
		if sliceIndex != 0 {
			drawnStart = math.Max(currentAngle-overlapDegrees, 0)
		}
		if endAngle-drawnStart >= fullCircleDegrees {
			endAngle = drawnStart + fullCircleDegrees
		}

		// The large-arc flag comes from the uncorrected span so the
		// seam correction can never flip the arc representation.
		largeArc := endAngle-currentAngle > 180

		startPoint := PolarToCartesian(center, radius, drawnStart)
		endPoint := PolarToCartesian(center, radius, endAngle)

		path := NewPath()
		path.MoveTo(endPoint)
		path.ArcTo(radius, largeArc, false, startPoint)
		if cfg.donut {
			path.LineTo(PolarToCartesian(center, innerRadius, drawnStart))
			path.ArcTo(innerRadius, largeArc, true, PolarToCartesian(center, innerRadius, endAngle))
		} else {
			path.LineTo(center)
		}
		path.Close()

		layout.Slices = append(layout.Slices, Slice{
			Index:      sliceIndex,
			StartAngle: currentAngle,
			EndAngle:   endAngle,
			Path:       path,
			ColorValue: ColorForIndex(sliceIndex),
			Fill:       FillForIndex(sliceIndex),
		})

		if wantLabels {
			midAngle := currentAngle + (endAngle-currentAngle)/2
			anchors = append(anchors, Label{
				At: PolarToCartesian(center, layout.LabelRadius, midAngle),
			})
		}

		sliceIndex++
		currentAngle = endAngle
	}

	if wantLabels {
		resolveLabelText(anchors, series, &cfg)
		layout.Labels = anchors
	}

	return layout, nil
}

// resolveLabelText fills in label text after the angle walk: explicit
// labels pair by series index, otherwise the interpolation function (or
// the default decimal form) formats the raw value.
func resolveLabelText(anchors []Label, series []float64, cfg *config) {
	for i := range anchors {
		if anchors[i].Suppressed {
			continue
		}
		switch {
		case cfg.labels != nil:
			if i < len(cfg.labels) {
				anchors[i].Text = cfg.labels[i]
			}
		case cfg.labelInterpolation != nil:
			anchors[i].Text = cfg.labelInterpolation(series[i])
		default:
			anchors[i].Text = formatFloat(series[i])
		}
	}
}
