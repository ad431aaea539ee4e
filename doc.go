// Package piechart computes the geometry and layout for pie and donut
// charts, independent of any rendering framework.
//
// # Overview
//
// piechart is a Pure Go layout engine: given a series of magnitudes and a
// small set of layout parameters it deterministically produces drawable
// primitives (slice paths, arc endpoints, label anchors) that any rendering
// surface can consume, whether SVG, canvas, or an immediate-mode UI.
//
// # Quick Start
//
//	import "github.com/gogpu/piechart"
//
//	layout, err := piechart.Compute([]float64{59.54, 17.2, 9.59, 7.6, 5.53, 0.55},
//		piechart.WithStartAngle(-60),
//		piechart.WithLabelPosition(piechart.LabelOutside),
//		piechart.WithLabelOffset(35),
//		piechart.WithPadding(20),
//	)
//	if err != nil {
//		// the series was empty
//	}
//	for _, s := range layout.Slices {
//		fmt.Println(s.Path.String()) // SVG path data
//	}
//
// # Architecture
//
// The engine is a single synchronized pass over the series:
//   - series.go normalizes the input and resolves the "whole circle" total
//   - polar.go converts angles to cartesian coordinates
//   - layout.go walks the normalized series, building slice paths and
//     label anchors with identical angle bookkeeping
//   - path.go carries the resulting drawing instructions and their SVG
//     string form, with optional flattening to cubic Béziers
//
// Every call recomputes the full layout from its inputs; there is no state
// between calls, and identical inputs yield bit-identical output.
//
// # Coordinate System
//
// Uses standard screen coordinates with the chart's polar convention:
//   - Origin (0,0) at top-left, X increases right, Y increases down
//   - Angles in degrees, 0 at twelve o'clock, increasing clockwise
package piechart

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
