// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/rolo/internal/audit"
	"github.com/aidanlsb/rolo/internal/config"
	"github.com/aidanlsb/rolo/internal/storage"
	"github.com/aidanlsb/rolo/internal/ui"
)

var (
	// Global flags
	bookName      string // Named book from config
	dataPathFlag  string // Explicit data file
	configPath    string
	statePathFlag string
	verbose       bool

	// Resolved values
	resolvedDataPath   string
	resolvedConfigPath string
	resolvedStatePath  string
	cfg                *config.Config
	logger             = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rolo",
	Short: "rolo - contacts and appointments from the command line",
	Long: `rolo keeps an address book of people and the appointments you have
with them. Run it without a command for an interactive shell, or pass a
command for a one-shot invocation:

  rolo add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2
  rolo find n/john|jane`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return handleError(ErrConfigInvalid, fmt.Errorf("failed to load config: %w", err), "")
		}
		resolvedStatePath = config.ResolveStatePath(statePathFlag, resolvedConfigPath, cfg)
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)
		logger = newLogger(os.Stderr, cfg.LogLevel, verbose)
		slog.SetDefault(logger)

		// Skip data path resolution for commands that don't open a book
		if skipsBook(cmd) {
			return nil
		}

		state, err := config.LoadState(resolvedStatePath)
		if err != nil {
			return handleError(ErrConfigInvalid, fmt.Errorf("failed to load state: %w", err), "")
		}
		resolvedDataPath, err = config.ResolveDataPath(config.DataPathOptions{
			DataPath: dataPathFlag,
			Book:     bookName,
		}, cfg, state)
		if err != nil {
			return handleError(errorCode(err), err, "Run 'rolo book list' to see configured books")
		}
		logger.Debug("resolved data file", "path", resolvedDataPath, "config", resolvedConfigPath)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return handleError(errorCode(err), err, "")
		}
		interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		return runShell(s, cmd.InOrStdin(), newRenderer(cmd.OutOrStdout()), interactive)
	},
}

func skipsBook(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "book", "completion", "help", "version":
			return true
		}
	}
	return false
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&bookName, "book", "b", "", "Named book from config")
	rootCmd.PersistentFlags().StringVar(&dataPathFlag, "data", "", "Explicit path to the data file (.json, .yaml or .db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&statePathFlag, "state", "", "Path to state file (overrides state_file in config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for script use)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log diagnostics to stderr")
}

func newRenderer(w io.Writer) *renderer {
	display := &ui.DisplayContext{TermWidth: ui.DefaultTermWidth}
	if f, ok := w.(*os.File); ok {
		display = ui.NewDisplayContext(f)
	}
	return &renderer{out: w, display: display, json: jsonOutput}
}

// openSession opens the resolved data file with the storage backend its
// extension selects.
func openSession() (*Session, error) {
	store, err := storage.Open(resolvedDataPath)
	if err != nil {
		return nil, err
	}
	auditEnabled := cfg != nil && cfg.Audit
	return OpenSession(store, audit.New(resolvedDataPath, auditEnabled), logger)
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, nil
}
