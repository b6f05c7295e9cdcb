package race

import "time"

// Record is a finished race.
type Record struct {
	Correct int
	Misses  int
	Elapsed time.Duration
	Splits  []Split
}

// Seconds returns the race time in seconds.
func (r Record) Seconds() float64 { return seconds(r.Elapsed) }

// Minutes returns the race time in minutes.
func (r Record) Minutes() float64 { return r.Seconds() / 60 }

// Words converts a character count to words (5 characters per word).
func (r Record) Words(chars int) float64 { return words(chars) }

// WPM returns correct words per minute.
func (r Record) WPM() float64 {
	return rate(r.Words(r.Correct), r.Minutes())
}

// Raw returns words per second including misses. The unit differs from WPM
// so both series share one chart axis.
func (r Record) Raw() float64 {
	return rate(r.Words(r.Correct+r.Misses), r.Seconds())
}

// Accuracy returns the percentage of keystrokes that matched. A race with
// no keystrokes is 100% accurate.
func (r Record) Accuracy() float64 {
	total := r.Correct + r.Misses
	if total == 0 {
		return 100
	}
	return float64(r.Correct) / float64(total) * 100
}

// WPMSeries returns one WPM point per split plus the final result.
func (r Record) WPMSeries() []Point {
	out := make([]Point, 0, len(r.Splits)+1)
	for _, s := range r.Splits {
		out = append(out, Point{Seconds: s.Seconds(), Value: s.WPM()})
	}
	return append(out, Point{Seconds: r.Seconds(), Value: r.WPM()})
}

// RawSeries returns one raw point per split plus the final result.
func (r Record) RawSeries() []Point {
	out := make([]Point, 0, len(r.Splits)+1)
	for _, s := range r.Splits {
		out = append(out, Point{Seconds: s.Seconds(), Value: s.Raw()})
	}
	return append(out, Point{Seconds: r.Seconds(), Value: r.Raw()})
}
