package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"taskboard/internal/config"
	"taskboard/internal/errors"
	"taskboard/internal/logging"
	"taskboard/internal/render"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	opener Opener
	out    io.Writer
	errOut io.Writer

	config *config.Config
	app    *App
	logger *slog.Logger
	close  func() error
}

// NewRootCommand creates the root cobra command with global flags. Output
// goes to out, logs to errOut.
func NewRootCommand(opener Opener, out, errOut io.Writer) *RootCommand {
	if opener == nil {
		opener = OpenStore
	}
	root := &RootCommand{
		opener: opener,
		out:    out,
		errOut: errOut,
	}

	root.cmd = &cobra.Command{
		Use:   "taskboard",
		Short: "A minimal prioritized task list",
		Long: `Taskboard keeps a list of tasks ordered by priority (lowest first) and
serves it as a web page with a single form endpoint for adding, editing and
deleting tasks.

EXAMPLES:
  taskboard serve --seed                   # Serve on 127.0.0.1:8080 with sample tasks
  taskboard add "Buy milk" -p 2            # Add a task with priority 2
  taskboard edit 3 "Buy oat milk" -p 1     # Replace description and priority of task 3
  taskboard delete 3                       # Delete task 3
  taskboard list -o json                   # Print the ordered list as JSON

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  Every key can be set through a TASKBOARD_ environment variable, e.g.
    TASKBOARD_DATABASE_DRIVER              sqlite, mysql or postgres (default: sqlite)
    TASKBOARD_DATABASE_DSN                 Driver DSN (required for mysql and postgres)
    TASKBOARD_DATABASE_DIR                 sqlite directory (default: ~/.taskboard)
    TASKBOARD_DATABASE_FILENAME            sqlite filename, or :memory: (default: taskboard.db)
    TASKBOARD_SERVER_ADDR                  Listen address (default: 127.0.0.1:8080)
    TASKBOARD_VALIDATION_MAX_PRIORITY      Highest accepted priority (default: 2147483647)
    TASKBOARD_LOGGING_LEVEL                debug, info, warn or error (default: info)
    TASKBOARD_DEBUG                        Print debug traces to stderr when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return root.teardown()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	r.cmd.SetOut(r.out)
	r.cmd.SetErr(r.errOut)

	err := r.cmd.ExecuteContext(ctx)
	// PersistentPostRunE is skipped when RunE fails.
	if closeErr := r.teardown(); err == nil {
		err = closeErr
	}
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.StringP("config", "c", "", "YAML config file (default ./taskboard.yaml if present)")

	// Database configuration
	flags.String("db-driver", "", "Database driver: sqlite, mysql, postgres (overrides TASKBOARD_DATABASE_DRIVER)")
	flags.String("db-dsn", "", "Database DSN (overrides TASKBOARD_DATABASE_DSN)")
	flags.String("db-dir", "", "sqlite database directory (overrides TASKBOARD_DATABASE_DIR)")
	flags.String("db-filename", "", "sqlite database filename (overrides TASKBOARD_DATABASE_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TASKBOARD_DATABASE_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TASKBOARD_DATABASE_WRITE_TIMEOUT)")

	// Validation configuration
	flags.Int("description-max-length", 0, "Maximum description length, 0 for unlimited (overrides TASKBOARD_VALIDATION_DESCRIPTION_MAX_LENGTH)")
	flags.Int64("max-priority", 0, "Highest accepted priority (overrides TASKBOARD_VALIDATION_MAX_PRIORITY)")

	// Logging configuration
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides TASKBOARD_LOGGING_LEVEL)")
	flags.String("log-format", "", "Log format: text, json (overrides TASKBOARD_LOGGING_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Serve command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the task board over HTTP",
		Long: `Serve the listing page on / and accept mutations on POST /update.

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return NewServeCommand(r.app, r.logger).Execute(ctx)
		},
	}
	serveCmd.Flags().String("addr", "", "Listen address (overrides TASKBOARD_SERVER_ADDR)")
	serveCmd.Flags().String("static-dir", "", "Serve /css and /js from this directory instead of the built-in assets")
	serveCmd.Flags().Bool("seed", false, "Insert three sample tasks when the board is empty")

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in priority order",
		Long: fmt.Sprintf(`List every task ordered by priority, then by id.

Output formats: %s (the first is the default)`, render.FormatList()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			return NewListCommand(r.app).Execute(cmd.Context(), format)
		},
	}
	listCmd.Flags().StringP("output", "o", string(render.FormatTable), "Output format: "+render.FormatList())

	// Add command
	addCmd := &cobra.Command{
		Use:   "add [description]",
		Short: "Add a task",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewAddCommand(r.app).Execute(cmd.Context(), args, priorityFlag(cmd))
		},
	}
	addCmd.Flags().Int64P("priority", "p", 0, "Task priority, lower sorts first (required)")

	// Edit command
	editCmd := &cobra.Command{
		Use:   "edit [id] [description]",
		Short: "Replace the description and priority of a task",
		Long: `Replace the description and priority of a task.

Editing an id that does not exist changes nothing and is not an error.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewEditCommand(r.app).Execute(cmd.Context(), args, priorityFlag(cmd))
		},
	}
	editCmd.Flags().Int64P("priority", "p", 0, "Task priority, lower sorts first (required)")

	// Delete command
	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long: `Delete a task by id.

Deleting an id that does not exist changes nothing and is not an error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDeleteCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	r.cmd.AddCommand(
		serveCmd,
		listCmd,
		addCmd,
		editCmd,
		deleteCmd,
	)
}

// priorityFlag returns nil when --priority was not given
func priorityFlag(cmd *cobra.Command) *int64 {
	if !cmd.Flags().Changed("priority") {
		return nil
	}
	priority, _ := cmd.Flags().GetInt64("priority")
	return &priority
}

// setup loads configuration, builds the logger and opens the store
func (r *RootCommand) setup(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loader.WithConfigFile(path)
	}

	cfg, err := loader.LoadWithOverrides(overridesFromFlags(cmd.Flags()))
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	r.config = cfg
	r.logger = logging.NewLogger(r.errOut, cfg.Logging.Level, cfg.Logging.Format)
	logging.Debugf("config loaded (file: %q, driver: %s)\n", loader.ConfigFileUsed(), cfg.Database.Driver)

	businessAPI, closeFn, err := r.opener(cmd.Context(), cfg)
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeStore, "failed to open store").
			WithContext("driver", cfg.Database.Driver)
	}
	r.close = closeFn
	r.app = NewApp(businessAPI, cfg, r.out)
	return nil
}

func (r *RootCommand) teardown() error {
	if r.close == nil {
		return nil
	}
	closeFn := r.close
	r.close = nil
	logging.Debugln("closing store")
	return closeFn()
}

// overridesFromFlags turns every explicitly set flag into a config override.
// Flags left at their zero value do not override lower layers.
func overridesFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	stringFlag := func(name string, target **string) {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			return
		}
		value, _ := flags.GetString(name)
		*target = &value
	}

	stringFlag("db-driver", &overrides.DBDriver)
	stringFlag("db-dsn", &overrides.DBDSN)
	stringFlag("db-dir", &overrides.DBDir)
	stringFlag("db-filename", &overrides.DBFilename)
	stringFlag("log-level", &overrides.LogLevel)
	stringFlag("log-format", &overrides.LogFormat)
	stringFlag("addr", &overrides.Addr)
	stringFlag("static-dir", &overrides.StaticDir)

	if flags.Changed("db-query-timeout") {
		value, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &value
	}
	if flags.Changed("db-write-timeout") {
		value, _ := flags.GetDuration("db-write-timeout")
		overrides.DBWriteTimeout = &value
	}
	if flags.Changed("description-max-length") {
		value, _ := flags.GetInt("description-max-length")
		overrides.DescriptionMaxLength = &value
	}
	if flags.Changed("max-priority") {
		value, _ := flags.GetInt64("max-priority")
		overrides.MaxPriority = &value
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		value, _ := flags.GetBool("seed")
		overrides.Seed = &value
	}

	return overrides
}
