// Package cli implements the ledger command line. Every command opens the configured
// store, wires the same services as the HTTP backend and prints markdown or JSON.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledgerbook/internal/buildinfo"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/core/services"
	"github.com/SscSPs/ledgerbook/internal/platform/config"
	"github.com/SscSPs/ledgerbook/internal/platform/events"
	"github.com/SscSPs/ledgerbook/internal/platform/store"
	"github.com/SscSPs/ledgerbook/internal/repositories/file"
	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	containerID  int64
	configFile   string
	dbPath       string
	driver       string
	pgsqlURL     string
	settingsFile string
	verbose      bool
	render       renderer

	logger    *slog.Logger
	store     *store.Store
	publisher portssvc.EventPublisher
	services  *portssvc.ServiceContainer
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "ledger",
		Short:   "Double-entry style bookkeeping ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:       true,
		PersistentPreRunE:  a.open,
		PersistentPostRunE: a.close,
	}

	flags := rootCmd.PersistentFlags()
	flags.Int64VarP(&a.containerID, "container", "c", 1, "container to operate on")
	flags.StringVar(&a.configFile, "config", "", "YAML file with configuration keys, e.g. sqlite_path")
	flags.StringVar(&a.dbPath, "db", "", "SQLite file (overrides SQLITE_PATH)")
	flags.StringVar(&a.driver, "driver", "", "store driver: sqlite or postgres (overrides STORE_DRIVER)")
	flags.StringVar(&a.pgsqlURL, "pgsql-url", "", "Postgres connection URL (overrides PGSQL_URL)")
	flags.StringVar(&a.settingsFile, "settings-file", "", "keep display settings in this YAML file instead of the store")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	flags.BoolVar(&a.render.json, "json", false, "print JSON instead of a rendered table")
	flags.BoolVar(&a.render.plain, "plain", false, "print raw markdown without terminal styling")
	flags.StringVar(&a.render.query, "query", "", "JSONPath expression applied to the JSON output, e.g. '$.totalAssets'")

	rootCmd.AddCommand(
		newContainerCommand(a),
		newAccountCommand(a),
		newCategoryCommand(a),
		newTxCommand(a),
		newTransferCommand(a),
		newReportCommand(a),
		newSummaryCommand(a),
		newExportCommand(a),
		newImportCommand(a),
		newSettingsCommand(a),
		newVerifyCommand(a),
		newReconcileCommand(a),
		newTokenCommand(a),
	)

	return rootCmd
}

// open loads the configuration, migrates and opens the store and builds the services.
func (a *app) open(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
	a.render.out = cmd.OutOrStdout()

	cfg, err := config.LoadConfigFile(a.configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.dbPath != "" {
		cfg.SQLitePath = a.dbPath
	}
	if a.pgsqlURL != "" {
		cfg.DatabaseURL = a.pgsqlURL
	}
	if a.driver != "" {
		cfg.StoreDriver = a.driver
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	a.store, err = store.Open(ctx, cfg, a.logger)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	repos := a.store.Repos
	if a.settingsFile != "" {
		repos.SettingsRepo = file.NewSettingsRepository(a.settingsFile)
	}

	a.publisher, err = events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		a.logger.Warn("Event publishing disabled", slog.String("error", err.Error()))
		a.publisher = nil
	}

	a.services = services.NewServiceContainer(cfg, repos, a.publisher)
	if err := a.services.Category.EnsureDefaults(ctx); err != nil {
		a.logger.Warn("Could not seed default categories", slog.String("error", err.Error()))
	}
	return nil
}

func (a *app) close(_ *cobra.Command, _ []string) error {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("Failed to close event publisher", slog.String("error", err.Error()))
		}
	}
	if a.store != nil {
		a.store.Close()
	}
	return nil
}
