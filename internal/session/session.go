// Package session derives work sessions from a raw event ledger.
// Sessions are computed fresh on every report and never persisted.
package session

import (
	"sort"
	"time"

	"github.com/julianjandeleit/worktime/internal/record"
)

// Session is one continuous work interval: a Start event paired with
// the next End. Open marks an in-progress session whose End is the
// caller-supplied "now" rather than a persisted event.
type Session struct {
	Start time.Time
	End   time.Time
	Open  bool
}

// Duration returns the session length.
func (s Session) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Pair turns an event sequence into sessions. Events are sorted by
// timestamp ascending (stable, so ties keep file order), a trailing
// Start is closed with a synthetic End at now, and the sorted list is
// walked two at a time. Pure function of its arguments: calling it
// again on the same input yields identical output.
//
// Sorting can disagree with file order when entries were written out of
// chronological sequence. A resulting pair that is not (Start, End)
// shaped is reported as a *record.ParseError instead of producing a
// nonsense session.
func Pair(events []record.Event, now time.Time) ([]Session, error) {
	if len(events) == 0 {
		return nil, nil
	}

	sorted := make([]record.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	open := false
	if sorted[len(sorted)-1].Kind == record.Start {
		open = true
		sorted = append(sorted, record.Event{Kind: record.End, Timestamp: now})
	}

	if len(sorted)%2 != 0 {
		return nil, &record.ParseError{Detail: "odd number of events after pairing"}
	}

	sessions := make([]Session, 0, len(sorted)/2)
	for i := 0; i < len(sorted); i += 2 {
		a, b := sorted[i], sorted[i+1]
		if a.Kind != record.Start || b.Kind != record.End {
			return nil, &record.ParseError{Detail: "inconsistent event order: timestamps disagree with start/end alternation"}
		}
		sessions = append(sessions, Session{
			Start: a.Timestamp,
			End:   b.Timestamp,
			Open:  open && i == len(sorted)-2,
		})
	}
	return sessions, nil
}

// Total sums all session durations. Empty input sums to zero.
func Total(sessions []Session) time.Duration {
	var total time.Duration
	for _, s := range sessions {
		total += s.Duration()
	}
	return total
}
