package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/tabload/internal/export"
	"github.com/vvka-141/tabload/internal/services"
	"github.com/vvka-141/tabload/internal/tui"
	"github.com/vvka-141/tabload/internal/ui"
	"github.com/vvka-141/tabload/pkg/tabload"
)

var loadCmd = &cobra.Command{
	Use:   "load <path>",
	Short: "Load a file or merge a directory of CSV/Excel files",
	Long: `Load a single CSV, XLSX or XLS file, or merge every supported file in a
directory into one table. Without an export target the command validates the
input and prints a summary.

Examples:
  tabload load ./reports
  tabload load ./reports -r --consistency warning --output merged.csv
  tabload load sales.xlsx --sqlite warehouse.db --table sales --replace --yes
  tabload load ./reports --postgres postgres://localhost/warehouse --table staging.reports`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

var (
	loadSourceFlags sourceFlagValues
	loadExportFlags exportFlagValues
)

func init() {
	rootCmd.AddCommand(loadCmd)
	bindSourceFlags(loadCmd, &loadSourceFlags)
	bindExportFlags(loadCmd, &loadExportFlags)
}

func runLoad(cmd *cobra.Command, args []string) error {
	loadDotEnv()

	projectCfg, err := loadProjectConfig(globalFlags.configFile)
	if err != nil {
		return err
	}
	cfg, err := buildLoadConfig(cmd, args[0], loadSourceFlags, projectCfg)
	if err != nil {
		return err
	}
	targets, err := buildTargets(cmd, loadExportFlags, projectCfg)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)
	result, err := services.NewOSLoader(logger).Load(cfg)
	if err != nil {
		return err
	}

	if !targets.Empty() {
		sinks, err := targets.Sinks()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		exporter := export.NewExporter(logger)
		if !loadExportFlags.yes {
			exporter = exporter.WithApprover(replaceApprover())
		}
		if err := exporter.Export(ctx, result.Table, sinks...); err != nil {
			return err
		}
	}

	if cfg.Verbose {
		fmt.Fprint(cmd.ErrOrStderr(), tui.RenderSummary(summaryFor(result)))
		fmt.Fprintf(cmd.ErrOrStderr(), "Run %s finished in %s\n", result.RunID, result.Duration.Round(time.Millisecond))
	}
	return nil
}

// replaceApprover prompts on a terminal and counts down otherwise.
func replaceApprover() tabload.Approver {
	if tui.IsInteractive() {
		return ui.NewInteractiveApprover()
	}
	return ui.NewForcedApprover(tabload.DefaultReplaceCountdown)
}

func summaryFor(r *services.Result) tui.Summary {
	s := tui.Summary{
		Source:  r.Source,
		Rows:    r.Table.Rows(),
		Columns: r.Table.Width(),
		Loaded:  len(r.Loaded),
		Skipped: r.Skipped,
	}
	if !r.Report.OK() {
		s.Warnings = len(r.Report.Issues)
	}
	return s
}

// signalContext is cancelled on SIGINT/SIGTERM so an in-flight export can
// roll back its transaction.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			fmt.Fprintf(os.Stderr, "\nReceived signal %v, cancelling export...\n", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}

func displayName(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return filepath.Base(abs)
}
