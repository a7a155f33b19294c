// Package cli wires configuration, logging and services into the finboard
// commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/finboard/internal/app"
	"github.com/riordanpawley/finboard/internal/config"
	"github.com/riordanpawley/finboard/internal/domain"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version = "dev"
	Commit  = "none"
)

type rootOptions struct {
	configPath string
	dataPath   string
}

// NewRootCommand builds the finboard command tree. Without a subcommand the
// dashboard runs.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "finboard",
		Short: "Terminal dashboard for your personal finances",
		Long: `finboard shows one month of transactions at a time with its income,
expenses and balance. Search, export to CSV, copy the summary or send it
as a desktop notification without leaving the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default .finboard.json or .finboard.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.dataPath, "data", "", "transactions JSON file")

	rootCmd.AddCommand(
		exportCmd(opts),
		summaryCmd(opts),
		versionCmd(),
	)

	return rootCmd
}

func exportCmd(opts *rootOptions) *cobra.Command {
	var month, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a month of transactions to a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			m, err := resolveMonth(cfg, month)
			if err != nil {
				return err
			}

			logger, closeLog, err := NewLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			return ExportCommand(NewDependencies(cfg, logger), m, out, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to export as YYYY-MM (default this month)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "file name inside the export directory")
	return cmd
}

func summaryCmd(opts *rootOptions) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the totals of a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			m, err := resolveMonth(cfg, month)
			if err != nil {
				return err
			}

			logger, closeLog, err := NewLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			return SummaryCommand(NewDependencies(cfg, logger), m, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM (default this month)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "finboard %s (%s)\n", Version, Commit)
		},
	}
}

func runDashboard(opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	// The dashboard owns the terminal, so logs only go to a file
	logger, closeLog, err := NewLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	model := app.New(cfg, app.WithLogger(logger))
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}

// loadConfig loads the config and applies the --data override
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.LoadConfig(cwd, opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if opts.dataPath != "" {
		// Flag paths are relative to the working directory, not the config file
		abs, err := filepath.Abs(opts.dataPath)
		if err != nil {
			return nil, fmt.Errorf("invalid --data path: %w", err)
		}
		cfg.Data.Transactions = abs
	}

	return cfg, nil
}

// resolveMonth parses a --month value, defaulting to the current month in the
// configured time zone
func resolveMonth(cfg *config.Config, value string) (domain.Month, error) {
	if value == "" {
		return domain.MonthOf(time.Now().In(cfg.Location())), nil
	}
	return domain.ParseMonth(value)
}

// NewLogger builds the logger described by cfg.Logging. Records go to
// logging.file when set, otherwise to fallback. The returned func closes the
// log file.
func NewLogger(cfg *config.Config, fallback io.Writer) (*slog.Logger, func() error, error) {
	handlerOpts := &slog.HandlerOptions{Level: cfg.LogLevel()}

	if cfg.Logging.File == "" {
		return slog.New(slog.NewTextHandler(fallback, handlerOpts)), func() error { return nil }, nil
	}

	path := cfg.ResolvePath(cfg.Logging.File)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return slog.New(slog.NewTextHandler(f, handlerOpts)), f.Close, nil
}
