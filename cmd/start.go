package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var startBanner = lipgloss.NewStyle().
	Foreground(lipgloss.Color("15")).
	Background(lipgloss.Color("28")).
	Padding(0, 1)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Begin a new work session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := openLedger().Begin(); err != nil {
			return err
		}
		msg := "WorkTime started"
		if colorEnabled() {
			msg = startBanner.Render(msg)
		}
		cmd.Println(msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
