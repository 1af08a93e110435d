package cmd

import (
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the last recorded event",
	RunE: func(cmd *cobra.Command, args []string) error {
		l := openLedger()

		cmd.Printf("WorkTime\n%s\n\n", l.Path())

		st, err := l.Status(granularity)
		if err != nil {
			return err
		}
		if st.Empty {
			cmd.Println("no record yet")
			return nil
		}
		cmd.Printf("Current Status\n%s - %s\n", st.LastKind, st.Relative)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
