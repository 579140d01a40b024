package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/punchcli/punch/internal/config"
	"github.com/punchcli/punch/internal/domain/ledger"
	"github.com/punchcli/punch/internal/domain/report"
	"github.com/punchcli/punch/internal/render"
	"github.com/punchcli/punch/internal/sqlite"
)

// App holds the wired services a command runs against.
type App struct {
	logger  *slog.Logger
	db      *sqlite.DB
	ledger  *ledger.Service
	reports *report.Service
	out     *render.Renderer
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}

type rootFlags struct {
	verbose bool
	dbFile  string
}

// Execute runs the punch CLI.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the punch command tree.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "punch",
		Short:         "A CLI based time logger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable logging of debug messages")
	root.PersistentFlags().StringVarP(&flags.dbFile, "dbfile", "f", "", "database file to use")

	root.AddCommand(
		newStartCommand(flags),
		newStopCommand(flags),
		newStatusCommand(flags),
		newLogCommand(flags),
		newSummarizeCommand(flags),
		newImportCommand(flags),
	)

	return root
}

// newApp loads configuration, opens the store, and brings the schema to the
// expected shape before any command logic runs.
func newApp(cmd *cobra.Command, flags *rootFlags) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flags.dbFile != "" {
		cfg.DB.Path = flags.dbFile
	}

	level := parseLogLevel(cfg.Log.Level)
	if flags.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		return nil, fmt.Errorf("preparing database path: %w", err)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(cmd.Context(), sqlite.Migrations(), logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &App{
		logger:  logger,
		db:      db,
		ledger:  ledger.NewService(sqlite.NewLedgerRepository(db), logger),
		reports: report.NewService(sqlite.NewReportRepository(db), logger),
		out:     render.New(cmd.OutOrStdout()),
	}, nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
