package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"monitorctl/internal/config"
	"monitorctl/internal/ddc"
	"monitorctl/internal/logger"
)

var (
	cfgFile   string
	displayID string
	verbose   bool

	cfg    *config.Config
	client *ddc.Client
)

var rootCmd = &cobra.Command{
	Use:   "monitorctl [command]",
	Short: "Control external monitors over DDC/CI",
	Long: `Monitorctl controls external monitor settings like brightness,
contrast, and color balance through the DDC/CI protocol, delegating the
wire protocol to the ddcutil command line tool.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			// The debug logger is gated on this variable.
			os.Setenv("MONITORCTL_DEBUG", "1")
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		log := logger.NewEnvLogger("[ddc]")
		client = ddc.NewClient(ddc.NewExecInvoker(cfg.Binary, log), log)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// callCtx returns the context bounding one backend invocation. The
// client itself carries no timeout logic; the bound comes from config.
func callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cfg.Timeout)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/monitorctl/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&displayID, "display", "d", "1", "display identifier from 'monitorctl detect'")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log backend invocations")
}
