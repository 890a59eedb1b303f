package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"monitorctl/internal/ddc"
	"monitorctl/internal/ui"
)

var inputsCmd = &cobra.Command{
	Use:   "inputs",
	Short: "List selectable input sources",
	Long: `Reads the display's capabilities string and lists the values its
Input Source feature accepts. Switch inputs with
'monitorctl set 0x60 <value>'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := callCtx()
		defer cancel()

		sources, err := client.InputSources(ctx, displayID)
		if err != nil {
			return err
		}

		current := -1
		if cur, _, err := client.GetVCP(ctx, displayID, ddc.FeatureInputSource); err == nil {
			current = cur
		}

		for _, s := range sources {
			marker := " "
			if int(s.Value) == current {
				marker = ui.Success("*")
			}
			fmt.Printf("%s %-14s %s\n", marker, s.Name, ui.Muted(fmt.Sprintf("0x%02x", s.Value)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inputsCmd)
}
