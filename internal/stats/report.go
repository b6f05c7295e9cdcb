package stats

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/kingcabrams/typing/internal/model"
	"github.com/kingcabrams/typing/internal/race"
)

// Summarize converts a finished race into a session log row.
func Summarize(rec race.Record, quoteName, username, layoutName string, endedAt time.Time) (model.RaceSummary, []model.SplitRow) {
	summary := model.RaceSummary{
		QuoteName: quoteName,
		Username:  username,
		Layout:    layoutName,
		EndedAt:   endedAt,
		Correct:   rec.Correct,
		Misses:    rec.Misses,
		ElapsedNs: rec.Elapsed.Nanoseconds(),
		WPM:       rec.WPM(),
		Raw:       rec.Raw(),
		Accuracy:  rec.Accuracy(),
	}
	splits := make([]model.SplitRow, len(rec.Splits))
	for i, s := range rec.Splits {
		splits[i] = model.SplitRow{
			Seq:       i,
			ElapsedNs: s.Elapsed.Nanoseconds(),
			Hits:      s.Hits,
			Misses:    s.Misses,
		}
	}
	return summary, splits
}

// Restore rebuilds a record from a session log row and its splits.
func Restore(summary model.RaceSummary, splits []model.SplitRow) race.Record {
	rec := race.Record{
		Correct: summary.Correct,
		Misses:  summary.Misses,
		Elapsed: time.Duration(summary.ElapsedNs),
		Splits:  make([]race.Split, len(splits)),
	}
	for i, s := range splits {
		rec.Splits[i] = race.Split{Elapsed: time.Duration(s.ElapsedNs), Hits: s.Hits, Misses: s.Misses}
	}
	return rec
}

// RenderResult prints the headline numbers of a race.
func RenderResult(w io.Writer, rec race.Record) error {
	_, err := fmt.Fprintf(w, "wpm %.0f  acc %.2f%%  raw %.2f  time %.1fs\n",
		math.Round(rec.WPM()), rec.Accuracy(), rec.Raw(), rec.Seconds())
	return err
}

// RenderSession prints the session summary and the per-race table.
func RenderSession(w io.Writer, agg model.SessionAggregate, races []model.RaceSummary, sparks map[int64]string) error {
	if agg.Races == 0 {
		_, err := fmt.Fprintln(w, "No races finished.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Session"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Races: %d\n", agg.Races); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Average WPM: %.0f\n", agg.AverageWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best WPM: %.0f\n", agg.BestWPM); err != nil {
		return err
	}
	acc := 100.0
	if total := agg.Correct + agg.Misses; total > 0 {
		acc = float64(agg.Correct) / float64(total) * 100
	}
	if _, err := fmt.Fprintf(w, "Accuracy: %.2f%%\n", acc); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	tbl := textTable{columns: []column{
		{title: "#", right: true},
		{title: "Quote"},
		{title: "WPM", right: true},
		{title: "Raw", right: true},
		{title: "Acc", right: true},
		{title: "Time", right: true},
		{title: "Splits"},
	}}
	for i, r := range races {
		tbl.add(
			fmt.Sprintf("%d", i+1),
			r.QuoteName,
			fmt.Sprintf("%.0f", r.WPM),
			fmt.Sprintf("%.2f", r.Raw),
			fmt.Sprintf("%.2f%%", r.Accuracy),
			fmt.Sprintf("%.1fs", time.Duration(r.ElapsedNs).Seconds()),
			sparks[r.ID],
		)
	}
	return tbl.write(w)
}
