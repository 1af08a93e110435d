package cmd

import (
	"github.com/spf13/cobra"

	"github.com/julianjandeleit/worktime/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live dashboard of the current session and totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(openLedger(), granularity)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
