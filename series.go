package piechart

import (
	"errors"
	"log/slog"
	"math"
)

// ErrEmptySeries is returned when the input series has no entries. A pie
// chart is undefined for an empty series; no geometry is produced.
var ErrEmptySeries = errors.New("piechart: empty series")

// normalizeSeries returns a copy of series usable for angular
// proportions: every negative entry is clamped to zero, everything else
// passes through unchanged. Length and order are preserved.
//
// Clamp-to-zero is the policy for negative magnitudes: a negative value
// contributes nothing to the circle rather than shifting the whole
// series. Shifted proportions would silently change the meaning of the
// remaining entries.
func normalizeSeries(series []float64) []float64 {
	normalized := make([]float64, len(series))
	for i, v := range series {
		if v < 0 {
			v = 0
		}
		normalized[i] = v
	}
	return normalized
}

func sumSeries(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// showRatio bounds. A ratio of 1 draws the full circle's worth of value;
// the lower bound keeps the implied total finite.
const (
	minShowRatio = 0.0001
	maxShowRatio = 1.0
)

// resolveTotal determines the denominator the angular spans are computed
// against. Precedence: showRatio override, then an explicit total, then
// the natural sum of the normalized series.
func resolveTotal(normalized, raw []float64, cfg *config) float64 {
	normalizedSum := sumSeries(normalized)

	switch {
	case cfg.hasShowRatio:
		ratio := cfg.showRatio
		if ratio < minShowRatio || ratio > maxShowRatio {
			clamped := math.Min(math.Max(ratio, minShowRatio), maxShowRatio)
			Logger().Warn("piechart: showRatio outside valid range, clamping",
				slog.Float64("showRatio", ratio),
				slog.Float64("clamped", clamped))
			ratio = clamped
		}
		return normalizedSum / ratio

	case cfg.hasTotal:
		rawSum := sumSeries(raw)
		if rawSum == 0 {
			// Nothing to scale against; fall back to the natural sum.
			Logger().Warn("piechart: explicit total with zero raw sum, ignoring",
				slog.Float64("total", cfg.total))
			return normalizedSum
		}
		// Guard against an explicit total smaller than the natural sum,
		// which would invert the proportions.
		return math.Max(normalizedSum/rawSum*cfg.total, normalizedSum)

	default:
		return normalizedSum
	}
}
