package ledger_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianjandeleit/worktime/internal/ledger"
	"github.com/julianjandeleit/worktime/internal/record"
	"github.com/julianjandeleit/worktime/internal/session"
)

// newTestLedger returns a ledger over a temp file with a controllable
// clock. Advance the clock by reassigning l.Now.
func newTestLedger(t *testing.T, now time.Time) *ledger.Ledger {
	t.Helper()
	l := ledger.New(filepath.Join(t.TempDir(), "worktime.yaml"))
	l.Now = func() time.Time { return now }
	return l
}

func TestStateMachineTransitions(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	l := newTestLedger(t, t0)

	// Empty → Open.
	if err := l.Begin(); err != nil {
		t.Fatalf("Begin from Empty: %v", err)
	}

	// Open → Open is illegal.
	var se *record.SequenceError
	if err := l.Begin(); !errors.As(err, &se) {
		t.Fatalf("Begin from Open: expected *SequenceError, got %v", err)
	}

	// Open → Closed.
	l.Now = func() time.Time { return t0.Add(time.Hour) }
	if err := l.End(); err != nil {
		t.Fatalf("End from Open: %v", err)
	}

	// Closed → Closed is illegal.
	if err := l.End(); !errors.As(err, &se) {
		t.Fatalf("End from Closed: expected *SequenceError, got %v", err)
	}

	// Closed → Open: the ledger is perpetually reusable.
	l.Now = func() time.Time { return t0.Add(2 * time.Hour) }
	if err := l.Begin(); err != nil {
		t.Fatalf("Begin from Closed: %v", err)
	}
}

func TestEndOnEmptyLedgerFails(t *testing.T) {
	l := newTestLedger(t, time.Now())
	var se *record.SequenceError
	if err := l.End(); !errors.As(err, &se) {
		t.Fatalf("End from Empty: expected *SequenceError, got %v", err)
	}
}

func TestStatusEmpty(t *testing.T) {
	l := newTestLedger(t, time.Now())
	st, err := l.Status(session.Minute)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !st.Empty {
		t.Error("expected Empty status on a fresh ledger")
	}
}

func TestStatusReportsLastEvent(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	l := newTestLedger(t, t0)

	if err := l.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	l.Now = func() time.Time { return t0.Add(3 * time.Hour) }
	st, err := l.Status(session.Minute)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.Empty {
		t.Fatal("expected non-empty status")
	}
	if st.LastKind != record.Start {
		t.Errorf("LastKind = %v, want Start", st.LastKind)
	}
	if !st.LastAt.Equal(t0) {
		t.Errorf("LastAt = %v, want %v", st.LastAt, t0)
	}
	if st.Relative != "3 hours ago" {
		t.Errorf("Relative = %q, want %q", st.Relative, "3 hours ago")
	}
}

func TestStatusDoesNotMutate(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	l := newTestLedger(t, t0)
	if err := l.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	if _, err := l.Status(session.Minute); err != nil {
		t.Fatalf("Status: %v", err)
	}
	// Begin must still be rejected: Status appended nothing.
	var se *record.SequenceError
	if err := l.Begin(); !errors.As(err, &se) {
		t.Fatalf("expected *SequenceError after Status, got %v", err)
	}
}

func TestSummary(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	l := newTestLedger(t, t0)

	if err := l.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	l.Now = func() time.Time { return t0.Add(time.Hour) }
	if err := l.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	l.Now = func() time.Time { return t0.Add(2 * time.Hour) }
	if err := l.Begin(); err != nil {
		t.Fatalf("second Begin: %v", err)
	}

	l.Now = func() time.Time { return t0.Add(150 * time.Minute) }
	sum, err := l.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(sum.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sum.Sessions))
	}
	if sum.Sessions[0].Open || !sum.Sessions[1].Open {
		t.Errorf("open flags = (%v, %v), want (false, true)", sum.Sessions[0].Open, sum.Sessions[1].Open)
	}
	if want := 90 * time.Minute; sum.Total != want {
		t.Errorf("Total = %v, want %v", sum.Total, want)
	}
}

func TestSummaryEmpty(t *testing.T) {
	l := newTestLedger(t, time.Now())
	sum, err := l.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(sum.Sessions) != 0 || sum.Total != 0 {
		t.Errorf("expected empty summary, got %d sessions, total %v", len(sum.Sessions), sum.Total)
	}
}
