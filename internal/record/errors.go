package record

import "fmt"

// FormatError reports a timestamp string that is not valid RFC 3339.
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: %v", e.Input, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ParseError reports ledger content that is structurally invalid or
// carries an event type outside the closed START/END set.
type ParseError struct {
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return "invalid ledger content: " + e.Detail + ": " + e.Err.Error()
	}
	return "invalid ledger content: " + e.Detail
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SequenceError reports an append that would break the alternation
// invariant: no two consecutive events may share a kind.
type SequenceError struct {
	Last Kind
	Next Kind
}

func (e *SequenceError) Error() string {
	if e.Next == Start {
		return "session already started: close it before starting a new one"
	}
	return "no open session: start one before stopping"
}
