package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/tabload/internal/config"
	"github.com/vvka-141/tabload/internal/export"
	"github.com/vvka-141/tabload/pkg/tabload"
)

// Environment variables consulted between flags and tabload.yaml.
const (
	EnvPolicy      = "TABLOAD_POLICY"
	EnvRecursive   = "TABLOAD_RECURSIVE"
	EnvPostgresURL = "TABLOAD_POSTGRES_URL"
)

var policyNames = []string{"error", "warning", "ignore"}

// sourceFlagValues are the flags shared by every command that reads data.
type sourceFlagValues struct {
	recursive   bool
	consistency string
}

// exportFlagValues select where load writes the combined table.
type exportFlagValues struct {
	output   string
	sqlite   string
	postgres string
	table    string
	replace  bool
	yes      bool
}

func bindSourceFlags(cmd *cobra.Command, v *sourceFlagValues) {
	cmd.Flags().BoolVarP(&v.recursive, "recursive", "r", false,
		"Include files in subdirectories when the path is a directory\n"+
			"Precedence: --recursive > $"+EnvRecursive+" > tabload.yaml")
	cmd.Flags().StringVarP(&v.consistency, "consistency", "c", "",
		"Column consistency policy: error|warning|ignore (default: error)\n"+
			"Precedence: --consistency > $"+EnvPolicy+" > tabload.yaml")
	_ = cmd.RegisterFlagCompletionFunc("consistency", completePolicies)
}

func bindExportFlags(cmd *cobra.Command, v *exportFlagValues) {
	cmd.Flags().StringVarP(&v.output, "output", "o", "",
		"Write the combined table as CSV to this file (\"-\" for stdout)")
	cmd.Flags().StringVar(&v.sqlite, "sqlite", "",
		"Write the combined table into this SQLite database file (requires --table)")
	cmd.Flags().StringVar(&v.postgres, "postgres", "",
		"Write the combined table into PostgreSQL with COPY (requires --table)\n"+
			"Alternative: $"+EnvPostgresURL+". Example: postgres://user@localhost:5432/warehouse")
	cmd.Flags().StringVar(&v.table, "table", "",
		"Target table for --sqlite/--postgres, optionally schema-qualified for PostgreSQL")
	cmd.Flags().BoolVar(&v.replace, "replace", false,
		"Drop the target table first if it exists (asks for confirmation)")
	cmd.Flags().BoolVarP(&v.yes, "yes", "y", false,
		"Skip the --replace confirmation")
}

// completePolicies provides shell completion for the --consistency flag.
func completePolicies(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, p := range policyNames {
		if strings.HasPrefix(p, toComplete) {
			matches = append(matches, p)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// loadProjectConfig reads --config when given, else ./tabload.yaml if present.
// A missing default file is not an error.
func loadProjectConfig(configFile string) (*config.ProjectConfig, error) {
	if configFile != "" {
		cfg, err := config.LoadFile(configFile)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("config file %s not found: %w", configFile, tabload.ErrInvalidConfig)
		}
		return cfg, err
	}

	cfg, err := config.Load(".")
	if errors.Is(err, config.ErrConfigNotFound) {
		return &config.ProjectConfig{}, nil
	}
	return cfg, err
}

// buildLoadConfig resolves a LoadConfig for path from flags, environment
// and project config. Precedence: flag > env > yaml > default.
func buildLoadConfig(cmd *cobra.Command, path string, src sourceFlagValues, projectCfg *config.ProjectConfig) (tabload.LoadConfig, error) {
	cfg := tabload.LoadConfig{Path: path, Verbose: true}

	if projectCfg.Verbose != nil {
		cfg.Verbose = *projectCfg.Verbose
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = globalFlags.verbose
	}
	if globalFlags.quiet {
		cfg.Verbose = false
	}

	switch {
	case cmd.Flags().Changed("recursive"):
		cfg.Recursive = src.recursive
	case os.Getenv(EnvRecursive) != "":
		r, err := strconv.ParseBool(os.Getenv(EnvRecursive))
		if err != nil {
			return cfg, fmt.Errorf("invalid $%s %q: %w", EnvRecursive, os.Getenv(EnvRecursive), tabload.ErrInvalidConfig)
		}
		cfg.Recursive = r
	case projectCfg.Recursive != nil:
		cfg.Recursive = *projectCfg.Recursive
	}

	policyText := projectCfg.ColumnConsistency
	if env := os.Getenv(EnvPolicy); env != "" {
		policyText = env
	}
	if cmd.Flags().Changed("consistency") {
		policyText = src.consistency
	}
	policy, err := tabload.ParsePolicy(policyText)
	if err != nil {
		return cfg, err
	}
	cfg.Policy = policy

	return cfg, cfg.Validate()
}

// buildTargets resolves export destinations. Precedence: flag > env > yaml.
func buildTargets(cmd *cobra.Command, flags exportFlagValues, projectCfg *config.ProjectConfig) (export.Targets, error) {
	yamlCfg := projectCfg.Export
	t := export.Targets{
		Output:   pick(cmd, "output", flags.output, "", yamlCfg.Output),
		SQLite:   pick(cmd, "sqlite", flags.sqlite, "", yamlCfg.SQLite),
		Postgres: pick(cmd, "postgres", flags.postgres, os.Getenv(EnvPostgresURL), yamlCfg.Postgres),
		Table:    pick(cmd, "table", flags.table, "", yamlCfg.Table),
		Replace:  yamlCfg.Replace,
	}
	if cmd.Flags().Changed("replace") {
		t.Replace = flags.replace
	}

	if _, err := t.Sinks(); err != nil {
		return t, err
	}
	return t, nil
}

func pick(cmd *cobra.Command, flag, flagValue, envValue, yamlValue string) string {
	switch {
	case cmd.Flags().Changed(flag):
		return flagValue
	case envValue != "":
		return envValue
	default:
		return yamlValue
	}
}

// loadDotEnv loads .env from the working directory if present.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		warnf("failed to load .env: %v", err)
	}
}
