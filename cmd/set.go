package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"monitorctl/internal/ddc"
)

var setCmd = &cobra.Command{
	Use:   "set <feature> <value>",
	Short: "Write a feature value",
	Long: `Writes a value to one VCP feature, by catalog name or hex code.
Out-of-range values are rejected by the monitor itself and reported as
a backend failure; no client-side clamping happens.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := ddc.LookupFeature(args[0])
		if err != nil {
			return err
		}

		value, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid value %q: expected an integer", args[1])
		}

		ctx, cancel := callCtx()
		defer cancel()

		if err := client.SetVCP(ctx, displayID, code, value); err != nil {
			return err
		}

		fmt.Printf("%s set to %d\n", ddc.FeatureName(code), value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
