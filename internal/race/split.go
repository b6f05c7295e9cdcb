package race

import "time"

const charsPerWord = 5.0

// Split is a snapshot of race progress at an elapsed time.
type Split struct {
	Elapsed time.Duration
	Hits    int
	Misses  int
}

// Point is one (seconds, value) sample of a chart series.
type Point struct {
	Seconds float64
	Value   float64
}

func words(chars int) float64 {
	return float64(chars) / charsPerWord
}

func seconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e9
}

// Seconds returns the split's elapsed time in seconds.
func (s Split) Seconds() float64 { return seconds(s.Elapsed) }

// Minutes returns the split's elapsed time in minutes.
func (s Split) Minutes() float64 { return s.Seconds() / 60 }

// WPM returns words per minute from hits at this split.
func (s Split) WPM() float64 {
	return rate(words(s.Hits), s.Minutes())
}

// Raw returns words per second including misses, on the same scale as Record.Raw.
func (s Split) Raw() float64 {
	return rate(words(s.Hits+s.Misses), s.Seconds())
}

func rate(n, d float64) float64 {
	if d <= 0 {
		return 0
	}
	return n / d
}
