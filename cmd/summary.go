package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/julianjandeleit/worktime/internal/record"
)

var (
	summaryHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	summaryOpenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	summaryTotalStyle  = lipgloss.NewStyle().Bold(true)
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "List all sessions and the total hours worked",
	RunE: func(cmd *cobra.Command, args []string) error {
		sum, err := openLedger().Summary()
		if err != nil {
			return err
		}

		styled := colorEnabled()
		render := func(s lipgloss.Style, text string) string {
			if styled {
				return s.Render(text)
			}
			return text
		}

		cmd.Println(render(summaryHeaderStyle, "Sessions"))
		if len(sum.Sessions) == 0 {
			cmd.Println("  (none)")
		}
		for _, s := range sum.Sessions {
			end := record.EncodeTime(s.End)
			if s.Open {
				end = render(summaryOpenStyle, "open")
			}
			cmd.Printf("  %s  →  %s  %6.2fh\n", record.EncodeTime(s.Start), end, s.Duration().Hours())
		}
		cmd.Println()
		cmd.Println(render(summaryTotalStyle, "Total: ") + formatHours(sum.Total))
		return nil
	},
}

// formatHours renders a duration as fractional hours, e.g. "7.52h".
func formatHours(d time.Duration) string {
	return fmt.Sprintf("%.2fh", d.Hours())
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
