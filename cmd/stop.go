package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var stopBanner = lipgloss.NewStyle().
	Foreground(lipgloss.Color("250")).
	Background(lipgloss.Color("25")).
	Padding(0, 1)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "End the current work session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := openLedger().End(); err != nil {
			return err
		}
		msg := "WorkTime stopped"
		if colorEnabled() {
			msg = stopBanner.Render(msg)
		}
		cmd.Println(msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
