package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"monitorctl/internal/ddc"
	"monitorctl/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the monitor control environment",
	Long:  "Checks that the backend utility and the i2c devices it needs are available, and reports host details useful in bug reports.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, check := range ddc.RunChecks(cfg.Binary) {
			mark := ui.Success("✓")
			if !check.OK {
				mark = ui.Error("✗")
			}
			fmt.Printf("%s %-18s %s\n", mark, check.Name, check.Detail)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
