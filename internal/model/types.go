// Package model defines shared data structures.
package model

import "time"

// Config defines race settings.
type Config struct {
	Username      string
	Layout        string
	QuotesPath    string
	BuiltinQuotes bool
	WatchQuotes   bool
}

// RaceSummary captures a finished race for the session log.
type RaceSummary struct {
	ID        int64
	QuoteName string
	Username  string
	Layout    string
	EndedAt   time.Time
	Correct   int
	Misses    int
	ElapsedNs int64
	WPM       float64
	Raw       float64
	Accuracy  float64
}

// SplitRow is a stored split of a race.
type SplitRow struct {
	RaceID    int64
	Seq       int
	ElapsedNs int64
	Hits      int
	Misses    int
}

// SessionAggregate summarizes the races logged this session.
type SessionAggregate struct {
	Races      int
	Correct    int
	Misses     int
	ElapsedNs  int64
	BestWPM    float64
	AverageWPM float64
}
