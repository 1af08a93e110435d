// Package ledger is the facade the CLI talks to: begin, end, status
// and summary over one event ledger file.
package ledger

import (
	"time"

	"github.com/julianjandeleit/worktime/internal/record"
	"github.com/julianjandeleit/worktime/internal/session"
)

// Ledger is an explicit handle on one ledger file. The clock is a
// field so tests can pin it; zero value is not usable, construct via
// New.
type Ledger struct {
	store *record.Store

	// Now supplies the current instant for stamping events and for
	// closing the synthetic open session. Defaults to time.Now.
	Now func() time.Time
}

// New returns a Ledger over the file at path.
func New(path string) *Ledger {
	return &Ledger{store: record.NewStore(path), Now: time.Now}
}

// Path returns the backing file path.
func (l *Ledger) Path() string {
	return l.store.Path()
}

// Begin appends a Start event at the current instant. Fails with a
// *record.SequenceError when a session is already open.
func (l *Ledger) Begin() error {
	return l.store.Append(record.NewEvent(record.Start, l.Now()))
}

// End appends an End event at the current instant. Fails with a
// *record.SequenceError when no session is open.
func (l *Ledger) End() error {
	return l.store.Append(record.NewEvent(record.End, l.Now()))
}

// Status describes the ledger's last event. Empty is true when the
// ledger has no events yet; the other fields are then zero.
type Status struct {
	Empty    bool
	LastKind record.Kind
	LastAt   time.Time
	Relative string
}

// Status reports the last event without mutating the ledger. The unit
// bounds how fine the relative-time phrase gets.
func (l *Ledger) Status(unit session.Unit) (Status, error) {
	events, err := l.store.Load()
	if err != nil {
		return Status{}, err
	}
	if len(events) == 0 {
		return Status{Empty: true}, nil
	}
	last := events[len(events)-1]
	return Status{
		LastKind: last.Kind,
		LastAt:   last.Timestamp,
		Relative: session.Relative(last.Timestamp, l.Now(), unit),
	}, nil
}

// Summary holds all derived sessions (closed ones plus at most one
// open tail) and their combined duration.
type Summary struct {
	Sessions []session.Session
	Total    time.Duration
}

// Summary pairs the full ledger into sessions without mutating it.
func (l *Ledger) Summary() (Summary, error) {
	events, err := l.store.Load()
	if err != nil {
		return Summary{}, err
	}
	sessions, err := session.Pair(events, l.Now())
	if err != nil {
		return Summary{}, err
	}
	return Summary{Sessions: sessions, Total: session.Total(sessions)}, nil
}
