package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"monitorctl/internal/ui"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect connected monitors",
	Long:  "Lists the DDC-capable monitors the backend can address, with their display identifiers.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := callCtx()
		defer cancel()

		monitors, err := client.ListMonitors(ctx)
		if err != nil {
			return err
		}

		for _, m := range monitors {
			fmt.Printf("%s %s\n", ui.Heading("Display "+m.DisplayID), m.Name)
			if m.Bus != "" {
				fmt.Printf("   %s\n", ui.Muted("bus: "+m.Bus))
			}
			if m.Serial != "" {
				fmt.Printf("   %s\n", ui.Muted("serial: "+m.Serial))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
