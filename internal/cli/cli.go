package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgnedit/pkg/buildinfo"
	"github.com/matzehuels/sbgnedit/pkg/config"
	"github.com/matzehuels/sbgnedit/pkg/constraint"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/errors"
	sbgnio "github.com/matzehuels/sbgnedit/pkg/io"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "sbgnedit"

	// stdoutPath as an output path writes the snapshot to standard output.
	stdoutPath = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	verbose    bool
	lenient    bool
	configPath string
}

// New creates a new CLI instance with a default logger and settings.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "sbgnedit checks and edits SBGN process description diagrams",
		Long:              `sbgnedit applies the SBGN process description rules to diagram snapshots: it audits them, suggests legal edge and node types, and performs rule-aware edits such as retyping and merging nodes.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&c.lenient, "lenient", false, "switch the SBGN rules off")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "settings file (default $XDG_CONFIG_HOME/sbgnedit/config.toml)")

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.hintsCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.cycleCommand())
	root.AddCommand(c.mergeCommand())
	root.AddCommand(c.clonesCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads settings, applies the log level and attaches the logger to
// the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg

	level := parseLogLevel(cfg.LogLevel)
	if c.verbose {
		level = log.DebugLevel
	}
	c.SetLogLevel(level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

func (c *CLI) loadConfig() (config.Config, error) {
	if c.configPath != "" {
		return config.Load(c.configPath)
	}
	return config.LoadDefault()
}

// manager returns the constraint manager the settings and flags select.
func (c *CLI) manager() *constraint.Manager {
	if c.lenient || !c.Config.Strict {
		return constraint.New(constraint.None)
	}
	return constraint.New(constraint.Strict)
}

// =============================================================================
// Snapshots
// =============================================================================

// loadSnapshot reads the diagram at path.
func loadSnapshot(ctx context.Context, path string) (*diagram.Diagram, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	d, err := sbgnio.ImportJSON(path)
	if err != nil {
		return nil, err
	}
	prog.done("Loaded " + path)
	logger.Debug("snapshot", "nodes", d.NodeCount(), "edges", d.EdgeCount())
	return d, nil
}

// saveSnapshot writes d to output, or back to input when output is empty.
// An output of "-" writes to w.
func saveSnapshot(ctx context.Context, w io.Writer, d *diagram.Diagram, input, output string) error {
	if output == stdoutPath {
		return sbgnio.WriteJSON(d, w)
	}
	if output == "" {
		output = input
	}
	if err := errors.ValidatePath(output); err != nil {
		return err
	}
	if err := sbgnio.ExportJSON(d, output); err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("wrote snapshot", "path", output)
	printFile(w, output)
	return nil
}

// statusOut returns the writer for status lines. They go to stderr when
// the snapshot itself is written to stdout.
func statusOut(cmd *cobra.Command, output string) io.Writer {
	if output == stdoutPath {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

// validateIDs checks identifiers given on the command line.
func validateIDs(ids ...string) error {
	return errors.ValidateIDs(ids)
}

func nodeIDs(ids []string) []diagram.NodeID {
	out := make([]diagram.NodeID, len(ids))
	for i, id := range ids {
		out[i] = diagram.NodeID(id)
	}
	return out
}

// stdinIsTerminal reports whether the interactive picker can run.
func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
