package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/julianjandeleit/worktime/internal/record"
)

func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	_, err = root.ExecuteC()
	return buf.String(), err
}

// ledgerPath isolates a test in a temp home and returns the ledger
// path to pass via --path.
func ledgerPath(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("WORKTIME_PATH", "")
	t.Setenv("NO_COLOR", "")
	return filepath.Join(tmp, "worktime.yaml")
}

func TestStartCreatesLedgerFile(t *testing.T) {
	path := ledgerPath(t)

	out, err := executeCommand(rootCmd, "start", "--path", path)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !strings.Contains(out, "created file "+path) {
		t.Errorf("expected first-run creation notice, got:\n%s", out)
	}
	if !strings.Contains(out, "WorkTime started") {
		t.Errorf("expected start confirmation, got:\n%s", out)
	}
}

// Starting twice in a row must fail with a sequence violation and
// leave the ledger with a single event.
func TestDoubleStartError(t *testing.T) {
	path := ledgerPath(t)

	if _, err := executeCommand(rootCmd, "start", "--path", path); err != nil {
		t.Fatalf("first start: %v", err)
	}

	_, err := executeCommand(rootCmd, "start", "--path", path)
	if err == nil {
		t.Fatal("expected error on double start, got nil")
	}
	var se *record.SequenceError
	if !errors.As(err, &se) {
		t.Fatalf("expected *record.SequenceError, got %T: %v", err, err)
	}

	events, err := record.NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("expected 1 event after rejected start, got %d", len(events))
	}
}

func TestStartStopRoundTrip(t *testing.T) {
	path := ledgerPath(t)

	if _, err := executeCommand(rootCmd, "start", "--path", path); err != nil {
		t.Fatalf("start: %v", err)
	}
	out, err := executeCommand(rootCmd, "stop", "--path", path)
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if !strings.Contains(out, "WorkTime stopped") {
		t.Errorf("expected stop confirmation, got:\n%s", out)
	}

	events, err := record.NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != record.Start || events[1].Kind != record.End {
		t.Errorf("kinds = (%v, %v), want (Start, End)", events[0].Kind, events[1].Kind)
	}
}

func TestStopWithoutOpenSessionFails(t *testing.T) {
	path := ledgerPath(t)

	_, err := executeCommand(rootCmd, "stop", "--path", path)
	if err == nil {
		t.Fatal("expected error stopping with no open session, got nil")
	}
	var se *record.SequenceError
	if !errors.As(err, &se) {
		t.Fatalf("expected *record.SequenceError, got %T: %v", err, err)
	}
}
