package race

// Session accumulates finished races for a running average.
type Session struct {
	totalWords   float64
	totalMinutes float64
	races        int
}

// Record folds a finished race into the totals.
func (s *Session) Record(rec Record) {
	s.totalWords += rec.Words(rec.Correct)
	s.totalMinutes += rec.Minutes()
	s.races++
}

// Average returns the session WPM, or false until some race time exists.
func (s *Session) Average() (float64, bool) {
	if s.totalMinutes <= 0 {
		return 0, false
	}
	return s.totalWords / s.totalMinutes, true
}

// Races returns the number of recorded races.
func (s *Session) Races() int { return s.races }

// TotalWords returns the words typed across the session.
func (s *Session) TotalWords() float64 { return s.totalWords }

// TotalMinutes returns the race time across the session.
func (s *Session) TotalMinutes() float64 { return s.totalMinutes }
