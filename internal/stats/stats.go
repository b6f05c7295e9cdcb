package stats

import (
	"math"

	"github.com/kingcabrams/typing/internal/race"
)

// sparkChars orders glyphs from lowest to highest value.
const sparkChars = " .:-=+*#%@"

// Sparkline renders values as one character each, scaled between the
// smallest and largest value. A flat series renders mid-scale.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	r := valueRange{min: math.Inf(1), max: math.Inf(-1)}
	for _, v := range values {
		r.min = math.Min(r.min, v)
		r.max = math.Max(r.max, v)
	}
	top := len(sparkChars) - 1
	span := r.max - r.min
	out := make([]byte, len(values))
	for i, v := range values {
		level := len(sparkChars) / 2
		if span > 1e-9 {
			level = int(math.Round((v - r.min) / span * float64(top)))
			level = min(max(level, 0), top)
		}
		out[i] = sparkChars[level]
	}
	return string(out)
}

// SplitWPM returns the WPM of each split followed by the final WPM.
func SplitWPM(rec race.Record) []float64 {
	points := rec.WPMSeries()
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}
