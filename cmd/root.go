package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/julianjandeleit/worktime/internal/config"
	"github.com/julianjandeleit/worktime/internal/ledger"
	"github.com/julianjandeleit/worktime/internal/session"
)

// pathFlag is the --path override; empty means "use config/env/default".
var pathFlag string

// cfg holds the resolved configuration, populated in PersistentPreRunE.
var cfg config.Config

// granularity is cfg.Granularity parsed into a session.Unit.
var granularity session.Unit

var rootCmd = &cobra.Command{
	Use:   "worktime",
	Short: "Track work sessions in a flat file and report elapsed time",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if pathFlag != "" {
			cfg.LedgerPath = pathFlag
		}

		granularity, err = session.ParseUnit(cfg.Granularity)
		if err != nil {
			return err
		}

		// First run: create the ledger file so the user sees where
		// their records will live.
		if _, err := os.Stat(cfg.LedgerPath); os.IsNotExist(err) {
			f, err := os.OpenFile(cfg.LedgerPath, os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("creating ledger file: %w", err)
			}
			f.Close()
			cmd.Printf("created file %s\n", cfg.LedgerPath)
		}
		return nil
	},
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openLedger returns a handle on the resolved ledger file.
func openLedger() *ledger.Ledger {
	return ledger.New(cfg.LedgerPath)
}

// colorEnabled reports whether styled output should be used: only on
// an interactive terminal and not when NO_COLOR is set.
func colorEnabled() bool {
	return !cfg.NoColor && term.IsTerminal(os.Stdout.Fd())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&pathFlag, "path", "", "ledger file (default $WORKTIME_PATH or ~/.worktime.yaml)")
}
