package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/tabload/internal/services"
	"github.com/vvka-141/tabload/internal/tui"
	"github.com/vvka-141/tabload/pkg/tabload"
)

var previewCmd = &cobra.Command{
	Use:   "preview <path>",
	Short: "Show the loaded or merged table",
	Long: `Load a file or merge a directory, then show the first rows of the result.

On a terminal the table opens in a scrollable view (q to quit, ? for help).
When output is piped, or TABLOAD_NON_INTERACTIVE is set, a plain text table
is printed instead.

Examples:
  tabload preview sales.xlsx
  tabload preview ./reports --consistency ignore --rows 50`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

var (
	previewSourceFlags sourceFlagValues
	previewRows        int
)

func init() {
	rootCmd.AddCommand(previewCmd)
	bindSourceFlags(previewCmd, &previewSourceFlags)
	previewCmd.Flags().IntVarP(&previewRows, "rows", "n", tabload.DefaultPreviewRows,
		"Maximum number of rows to show (0 for all)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	if previewRows < 0 {
		return fmt.Errorf("--rows must not be negative: %w", tabload.ErrInvalidConfig)
	}

	loadDotEnv()

	projectCfg, err := loadProjectConfig(globalFlags.configFile)
	if err != nil {
		return err
	}
	cfg, err := buildLoadConfig(cmd, args[0], previewSourceFlags, projectCfg)
	if err != nil {
		return err
	}

	result, err := services.NewOSLoader(newLogger(cfg.Verbose)).Load(cfg)
	if err != nil {
		return err
	}

	return tui.RunPreview(cmd.OutOrStdout(), displayName(cfg.Path), result.Table, previewRows)
}
