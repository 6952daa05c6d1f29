package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/tabload/internal/consistency"
	"github.com/vvka-141/tabload/internal/services"
	"github.com/vvka-141/tabload/internal/tui"
	"github.com/vvka-141/tabload/pkg/tabload"
)

var checkCmd = &cobra.Command{
	Use:   "check <directory>",
	Short: "Report column consistency across a directory without merging",
	Long: `Discover and load every supported file in a directory, then compare each
file's columns against the first loaded file. Nothing is merged or written.

Exits with code 15 when any file disagrees with the reference columns.

Examples:
  tabload check ./reports
  tabload check ./reports --recursive`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

var checkFlags struct {
	recursive bool
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&checkFlags.recursive, "recursive", "r", false,
		"Include files in subdirectories")
}

func runCheck(cmd *cobra.Command, args []string) error {
	loadDotEnv()

	projectCfg, err := loadProjectConfig(globalFlags.configFile)
	if err != nil {
		return err
	}
	cfg, err := buildLoadConfig(cmd, args[0], sourceFlagValues{recursive: checkFlags.recursive}, projectCfg)
	if err != nil {
		return err
	}

	loader := services.NewOSLoader(newLogger(cfg.Verbose))
	loaded, skipped, err := loader.Merger().LoadAll(cfg.Path, cfg.Recursive)
	if err != nil {
		return err
	}

	report := consistency.Check(loaded)
	out := cmd.OutOrStdout()
	for _, name := range skipped {
		fmt.Fprintf(out, "%s skipped %s\n", tui.ErrorStyle.Render(tui.SymbolCross), name)
	}

	if !report.OK() {
		fmt.Fprintln(cmd.ErrOrStderr(), tui.WarningStyle.Render(report.Message()))
		return &tabload.SchemaMismatchError{Report: report}
	}

	fmt.Fprintf(out, "%s %d file(s) share columns %v\n",
		tui.SuccessStyle.Render(tui.SymbolCheck), len(loaded), loaded[0].Table.Columns())
	return nil
}
