// Package record holds the event model and the on-disk ledger store.
// A ledger is a YAML list of {type, timestamp} mappings; timestamps are
// RFC 3339 with the original offset preserved.
package record

import (
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Kind is the closed set of event kinds a ledger may contain.
type Kind int

const (
	Start Kind = iota
	End
)

// kindNames maps Kind to its wire representation.
var kindNames = map[Kind]string{
	Start: "START",
	End:   "END",
}

// String returns the wire name (START or END).
func (k Kind) String() string {
	return kindNames[k]
}

// ParseKind converts a wire name back to a Kind.
// Returns a *ParseError for anything outside the closed set.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "START":
		return Start, nil
	case "END":
		return End, nil
	}
	return 0, &ParseError{Detail: "unknown event type " + strconv.Quote(s)}
}

// Event is an immutable record of a state transition.
type Event struct {
	Kind      Kind
	Timestamp time.Time
}

// NewEvent stamps an event at t, truncated to whole seconds so the
// RFC 3339 round trip is exact.
func NewEvent(kind Kind, t time.Time) Event {
	return Event{Kind: kind, Timestamp: t.Truncate(time.Second)}
}

// EncodeTime renders t as RFC 3339, keeping its offset as-is.
func EncodeTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// DecodeTime parses an RFC 3339 string, preserving the encoded offset
// so that DecodeTime(EncodeTime(x)) == x for second-precision instants.
func DecodeTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, &FormatError{Input: s, Err: err}
	}
	return t, nil
}

// eventDoc is the wire form of an Event. Exactly these two fields; the
// schema is fixed by the ledger file format.
type eventDoc struct {
	Type      string `yaml:"type"`
	Timestamp string `yaml:"timestamp"`
}

// MarshalYAML implements yaml.Marshaler.
func (e Event) MarshalYAML() (interface{}, error) {
	return eventDoc{Type: e.Kind.String(), Timestamp: EncodeTime(e.Timestamp)}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Validates the kind against
// the closed set and the timestamp against RFC 3339.
func (e *Event) UnmarshalYAML(node *yaml.Node) error {
	var doc eventDoc
	if err := node.Decode(&doc); err != nil {
		return &ParseError{Detail: "malformed event entry", Err: err}
	}
	kind, err := ParseKind(doc.Type)
	if err != nil {
		return err
	}
	ts, err := DecodeTime(doc.Timestamp)
	if err != nil {
		return err
	}
	e.Kind = kind
	e.Timestamp = ts
	return nil
}
