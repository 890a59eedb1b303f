package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"monitorctl/internal/config"
	"monitorctl/internal/ddc"
	"monitorctl/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show all control values for a display",
	Long: `Reads the standard control set (or the status_features from the
config file) in a single batched backend call and renders it by group.
Controls the monitor does not support are reported individually
without failing the rest.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		codes, err := statusCodes(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := callCtx()
		defer cancel()

		values, err := client.GetMultipleVCP(ctx, displayID, codes)
		if err != nil {
			return err
		}

		renderStatus(values)
		return nil
	},
}

// statusCodes resolves the feature set to query: the config override
// when present, otherwise the full catalog.
func statusCodes(cfg *config.Config) ([]byte, error) {
	if len(cfg.StatusFeatures) == 0 {
		return ddc.CatalogCodes(), nil
	}

	codes := make([]byte, 0, len(cfg.StatusFeatures))
	for _, name := range cfg.StatusFeatures {
		code, err := ddc.LookupFeature(name)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// renderStatus prints values grouped the way the catalog groups them;
// codes outside the catalog land in a trailing section.
func renderStatus(values []ddc.FeatureValue) {
	byCode := make(map[byte]ddc.FeatureValue, len(values))
	for _, v := range values {
		byCode[v.Code] = v
	}

	printed := make(map[byte]bool, len(values))
	for _, group := range ddc.GroupTitles {
		var lines []string
		for _, f := range ddc.Catalog {
			if f.Group != group.ID {
				continue
			}
			v, ok := byCode[f.Code]
			if !ok {
				continue
			}
			printed[f.Code] = true
			lines = append(lines, statusLine(v))
		}
		if len(lines) > 0 {
			fmt.Println(ui.Heading(group.Title))
			for _, line := range lines {
				fmt.Println(line)
			}
		}
	}

	var other []string
	for _, v := range values {
		if !printed[v.Code] {
			other = append(other, statusLine(v))
		}
	}
	if len(other) > 0 {
		fmt.Println(ui.Heading("Other"))
		for _, line := range other {
			fmt.Println(line)
		}
	}
}

func statusLine(v ddc.FeatureValue) string {
	name := ddc.FeatureName(v.Code)
	if !v.Success {
		return fmt.Sprintf("  %-12s %s", name, ui.Muted(v.ErrorMessage))
	}
	return fmt.Sprintf("  %-12s %s", name, ui.Success(fmt.Sprintf("%d / %d", v.Current, v.Maximum)))
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
