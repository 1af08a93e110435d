// Package tui provides the live Bubble Tea dashboard behind
// "worktime watch". It is a reader only: the ledger is reloaded when
// the backing file changes on disk, and the open session's elapsed
// time ticks once a second.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/julianjandeleit/worktime/internal/ledger"
	"github.com/julianjandeleit/worktime/internal/record"
	"github.com/julianjandeleit/worktime/internal/session"
)

// ── Styles ────────────

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	sectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	openStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	closedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)
)

// ── Messages ────────────

type tickMsg time.Time

// fileChangedMsg reports that the ledger file was rewritten on disk.
type fileChangedMsg struct{}

// watchErrMsg carries a watcher failure; the dashboard keeps running
// on tick-driven reloads only.
type watchErrMsg struct{ err error }

// ── Model ────────────

// Model is the root Bubble Tea model for the watch dashboard.
type Model struct {
	ledger  *ledger.Ledger
	unit    session.Unit
	watcher *fsnotify.Watcher

	status  ledger.Status
	summary ledger.Summary
	loadErr error

	spin     spinner.Model
	width    int
	height   int
	ready    bool
	watching bool
}

// New creates a dashboard model over l. The watcher may be nil; the
// dashboard then refreshes on ticks alone.
func New(l *ledger.Ledger, unit session.Unit, w *fsnotify.Watcher) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = openStyle
	m := Model{ledger: l, unit: unit, watcher: w, spin: sp, watching: w != nil}
	m.reload()
	return m
}

// reload re-reads the ledger and recomputes status and summary.
func (m *Model) reload() {
	st, err := m.ledger.Status(m.unit)
	if err != nil {
		m.loadErr = err
		return
	}
	sum, err := m.ledger.Summary()
	if err != nil {
		m.loadErr = err
		return
	}
	m.status = st
	m.summary = sum
	m.loadErr = nil
}

// ── Bubble Tea interface ────────────

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick(), m.spin.Tick}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForChange blocks on the watcher until the ledger file is
// rewritten. Renames are included because saves go through a temp file
// + rename.
func waitForChange(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					return fileChangedMsg{}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.reload()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		// The open session's end is "now", so recompute every second.
		m.reload()
		return m, tick()

	case fileChangedMsg:
		m.reload()
		return m, waitForChange(m.watcher)

	case watchErrMsg:
		m.watching = false
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}

	title := titleStyle.Width(m.width).Render("  worktime  " + filepath.Base(m.ledger.Path()))

	var sb strings.Builder
	if m.loadErr != nil {
		sb.WriteString("\n" + errStyle.Render("  "+m.loadErr.Error()) + "\n")
	} else {
		sb.WriteString(m.renderStatus())
		sb.WriteString(m.renderSessions())
	}
	content := sb.String()

	hint := "  r reload  q quit"
	right := "watching"
	if !m.watching {
		right = "polling"
	}
	pad := m.width - lipgloss.Width(hint) - len(right) - 2
	if pad < 1 {
		pad = 1
	}
	statusBar := statusBarStyle.Width(m.width).Render(hint + strings.Repeat(" ", pad) + right)

	// Pad content so the status bar sits on the bottom row.
	contentHeight := m.height - 2
	lines := strings.Count(content, "\n")
	if lines < contentHeight {
		content += strings.Repeat("\n", contentHeight-lines)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, content, statusBar)
}

// ── Sections ────────────

func heading(s string) string {
	return "\n" + sectionHeader.Render("  "+s) + "\n\n"
}

func (m Model) renderStatus() string {
	var sb strings.Builder
	sb.WriteString(heading("Current Status"))

	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("  %-10s", label)) + "  " + value + "\n")
	}

	switch {
	case m.status.Empty:
		sb.WriteString(dimStyle.Render("  no record yet") + "\n")
	case m.status.LastKind == record.Start:
		sb.WriteString("  " + m.spin.View() + openStyle.Render(" session open") + "\n")
		row("Since:", timeStyle.Render(record.EncodeTime(m.status.LastAt)))
		row("Started:", m.status.Relative)
	default:
		sb.WriteString("  " + closedStyle.Render("● session closed") + "\n")
		row("Last end:", timeStyle.Render(record.EncodeTime(m.status.LastAt)))
		row("Ended:", m.status.Relative)
	}
	return sb.String()
}

func (m Model) renderSessions() string {
	var sb strings.Builder
	sb.WriteString(heading(fmt.Sprintf("Sessions (%d)", len(m.summary.Sessions))))

	if len(m.summary.Sessions) == 0 {
		sb.WriteString(dimStyle.Render("  (none)") + "\n")
	}
	for _, s := range m.summary.Sessions {
		start := timeStyle.Render(s.Start.Format("2006-01-02 15:04"))
		var end string
		if s.Open {
			end = openStyle.Render("open")
		} else {
			end = timeStyle.Render(s.End.Format("15:04"))
		}
		sb.WriteString(fmt.Sprintf("  %s → %s  %6.2fh\n", start, end, s.Duration().Hours()))
	}

	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("  Total:") + fmt.Sprintf("  %.2fh\n", m.summary.Total.Hours()))
	return sb.String()
}

// ── Entry point ────────────

// Run starts the dashboard over l. A file watcher on the ledger's
// directory is best-effort: if it cannot be created the dashboard
// falls back to per-second reloads.
func Run(l *ledger.Ledger, unit session.Unit) error {
	var watcher *fsnotify.Watcher
	if w, err := fsnotify.NewWatcher(); err == nil {
		// Watch the directory, not the file: rename-based saves
		// replace the inode the file watch would be pinned to.
		if err := w.Add(filepath.Dir(l.Path())); err == nil {
			watcher = w
		} else {
			w.Close()
		}
	}
	if watcher != nil {
		defer watcher.Close()
	}

	p := tea.NewProgram(New(l, unit, watcher), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
