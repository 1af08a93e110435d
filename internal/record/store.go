package record

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store persists the event ledger as one YAML file. A Store is a plain
// handle around a path; callers construct one per invocation. No file
// locking is provided: with concurrent processes the last writer wins
// and intervening appends may be lost. That is accepted behavior for a
// single-user tool.
type Store struct {
	path string
}

// NewStore returns a Store for the ledger file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full event sequence. An absent or empty file, or a
// file holding an empty/null list, yields an empty slice and no error.
// Structurally invalid content or an unknown event type yields a
// *ParseError.
func (s *Store) Load() ([]Event, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	var events []Event
	if err := yaml.Unmarshal(data, &events); err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, pe
		}
		var fe *FormatError
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, &ParseError{Detail: "not a valid event list", Err: err}
	}
	return events, nil
}

// Save serializes the full sequence and replaces the ledger file via a
// temp file + os.Rename, so a concurrent reader never observes a
// partial write.
func (s *Store) Save(events []Event) error {
	data, err := yaml.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to serialize ledger: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "worktime-*.yaml.tmp")
	if err != nil {
		return fmt.Errorf("failed to persist ledger: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up the temp file on any error path.
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to persist ledger: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to persist ledger: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to persist ledger: %w", err)
	}
	return nil
}

// Append loads the current sequence, rejects ev with a *SequenceError
// when its kind matches the last event's kind, then appends and saves.
// This is the single gate that keeps the ledger alternating.
func (s *Store) Append(ev Event) error {
	events, err := s.Load()
	if err != nil {
		return err
	}
	if len(events) > 0 && events[len(events)-1].Kind == ev.Kind {
		return &SequenceError{Last: events[len(events)-1].Kind, Next: ev.Kind}
	}
	events = append(events, ev)
	return s.Save(events)
}
