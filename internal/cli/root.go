package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vvka-141/tabload/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "tabload",
	Short: "Load and merge CSV and Excel files into one table",
	Long: `tabload loads a CSV, XLSX or XLS file, or merges every supported file in a
directory into one combined table. Files that disagree on their columns are
handled by the column consistency policy:

  error    stop and report the mismatching files (default)
  warning  report the mismatch, then merge by column name
  ignore   merge by column name without checking

The combined table can be written to CSV, SQLite or PostgreSQL.

Configuration precedence: flags > environment > tabload.yaml > defaults.
A .env file in the working directory is loaded into the environment.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Path not found, or neither a file nor a directory
  12 - Unsupported file format
  13 - No supported files in directory
  14 - No file could be loaded
  15 - Column consistency check failed
  16 - Export failed`,
	SilenceUsage: true,
}

var globalFlags struct {
	verbose    bool
	quiet      bool
	configFile string
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.verbose, "verbose", "v", true,
		"Print per-file progress and a summary")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.quiet, "quiet", "q", false,
		"Suppress progress output (overrides --verbose and tabload.yaml)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.configFile, "config", "",
		"Path to a config file (default: ./tabload.yaml when present)")
}

// newLogger writes diagnostics to stderr, colored when stderr is a terminal.
func newLogger(verbose bool) *logging.ConsoleLogger {
	color := os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stderr.Fd()))
	return logging.NewConsoleLoggerTo(os.Stderr, verbose, color)
}

func warnf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}
