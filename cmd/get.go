package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"monitorctl/internal/ddc"
)

var getCmd = &cobra.Command{
	Use:   "get <feature>",
	Short: "Read a feature value",
	Long:  "Reads the current and maximum value of one VCP feature, by catalog name (e.g. brightness) or hex code (e.g. 0x10).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := ddc.LookupFeature(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := callCtx()
		defer cancel()

		current, maximum, err := client.GetVCP(ctx, displayID, code)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d / %d\n", ddc.FeatureName(code), current, maximum)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
