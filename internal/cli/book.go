package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/rolo/internal/config"
	"github.com/aidanlsb/rolo/internal/slugs"
	"github.com/aidanlsb/rolo/internal/storage"
)

type bookContext struct {
	cfg        *config.Config
	state      *config.State
	configPath string
	statePath  string
}

type bookRow struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	IsDefault bool   `json:"is_default"`
	IsActive  bool   `json:"is_active"`
}

var (
	bookAddReplace bool
	bookAddPin     bool
)

func loadBookContext() (*bookContext, error) {
	loadedCfg, loadedConfigPath, err := loadGlobalConfigWithPath()
	if err != nil {
		return nil, err
	}
	statePath := config.ResolveStatePath(statePathFlag, loadedConfigPath, loadedCfg)
	state, err := config.LoadState(statePath)
	if err != nil {
		return nil, err
	}
	return &bookContext{
		cfg:        loadedCfg,
		state:      state,
		configPath: loadedConfigPath,
		statePath:  statePath,
	}, nil
}

// bookRows lists configured books and reports whether the active book in
// state is missing from config.
func bookRows(cfg *config.Config, state *config.State) ([]bookRow, bool) {
	active := ""
	if state != nil {
		active = state.ActiveBook
	}
	rows := make([]bookRow, 0, len(cfg.Books))
	activeMissing := active != ""
	for _, name := range cfg.BookNames() {
		path, _ := cfg.BookPath(name)
		rows = append(rows, bookRow{
			Name:      name,
			Path:      path,
			IsDefault: name == cfg.DefaultBook,
			IsActive:  name == active,
		})
		if name == active {
			activeMissing = false
		}
	}
	return rows, activeMissing
}

func runBookList(cmd *cobra.Command, args []string) error {
	ctx, err := loadBookContext()
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}

	rows, activeMissing := bookRows(ctx.cfg, ctx.state)
	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"config_path":    ctx.configPath,
			"state_path":     ctx.statePath,
			"default_book":   ctx.cfg.DefaultBook,
			"active_book":    ctx.state.ActiveBook,
			"active_missing": activeMissing,
			"books":          rows,
		}, &Meta{Count: len(rows)})
		return nil
	}

	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, "No books configured.")
		fmt.Fprintf(out, "Using %s\n", config.DefaultDataPath())
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Add books to config.toml:")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  default_book = \"personal\"")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  [books]")
		fmt.Fprintln(out, "  personal = \"~/contacts/personal.json\"")
		return nil
	}

	for _, row := range rows {
		prefix := "  "
		if row.IsActive && row.IsDefault {
			prefix = ">*"
		} else if row.IsActive {
			prefix = "> "
		} else if row.IsDefault {
			prefix = " *"
		}
		fmt.Fprintf(out, "%s %-12s -> %s\n", prefix, row.Name, row.Path)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "> = active book (state)")
	fmt.Fprintln(out, "* = default book (config)")
	fmt.Fprintf(out, "config: %s\n", ctx.configPath)
	fmt.Fprintf(out, "state:  %s\n", ctx.statePath)
	if activeMissing {
		fmt.Fprintf(out, "warning: active book '%s' in state is not configured\n", ctx.state.ActiveBook)
	}
	return nil
}

var bookCmd = &cobra.Command{
	Use:     "book",
	GroupID: "manage",
	Short:   "Manage configured address books and the active selection",
	Long: `Manage configured address books and the active selection.

The active book is stored in state.toml.
The default book is stored in config.toml and used as fallback.`,
	Args: cobra.NoArgs,
	RunE: runBookList,
}

var bookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured books",
	Args:  cobra.NoArgs,
	RunE:  runBookList,
}

var bookCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the data file commands would use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadBookContext()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		path, err := config.ResolveDataPath(config.DataPathOptions{DataPath: dataPathFlag, Book: bookName}, ctx.cfg, ctx.state)
		if err != nil {
			return handleError(errorCode(err), err, "Run 'rolo book list' to see configured books")
		}
		format, err := storage.FormatFor(path)
		if err != nil {
			return handleError(ErrUnsupportedFormat, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"path":        path,
				"format":      string(format),
				"active_book": ctx.state.ActiveBook,
				"config_path": ctx.configPath,
				"state_path":  ctx.statePath,
			}, nil)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "path:   %s\nformat: %s\n", path, format)
		return nil
	},
}

var bookUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active book in state.toml",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		ctx, err := loadBookContext()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		path, err := ctx.cfg.BookPath(name)
		if err != nil {
			return handleError(ErrBookNotFound, err, "Run 'rolo book list' to see configured books")
		}

		ctx.state.ActiveBook = name
		if err := config.SaveState(ctx.statePath, ctx.state); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"active_book": name,
				"path":        path,
				"state_path":  ctx.statePath,
			}, nil)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Active book set to '%s' -> %s\n", name, path)
		return nil
	},
}

var bookClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the active book from state.toml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadBookContext()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		prev := ctx.state.ActiveBook
		ctx.state.ActiveBook = ""
		if err := config.SaveState(ctx.statePath, ctx.state); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"cleared": true, "previous": prev}, nil)
			return nil
		}
		if prev == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "Active book already clear.")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared active book '%s'.\n", prev)
		}
		return nil
	},
}

var bookAddCmd = &cobra.Command{
	Use:   "add <name> [path]",
	Short: "Add a book to config.toml",
	Long: `Add a book to config.toml. The file does not need to exist yet; it is
created on the first change. The extension picks the format: .json, .yaml,
.yml, .db, .sqlite or .sqlite3.

Without a path the book is stored next to the default address book, in a
file named after the book ("Work Contacts" -> work-contacts.json).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return handleError(ErrInvalidValue, errors.New("book name is required"), "")
		}
		rawPath := filepath.Join(filepath.Dir(config.DefaultDataPath()), slugs.BookFileName(name))
		if len(args) == 2 {
			rawPath = config.ExpandPath(args[1])
		}
		absPath, err := filepath.Abs(rawPath)
		if err != nil {
			return handleError(ErrInvalidValue, fmt.Errorf("failed to resolve book path: %w", err), "")
		}
		if _, err := storage.FormatFor(absPath); err != nil {
			return handleError(ErrUnsupportedFormat, err, "Use a .json, .yaml or .db file")
		}

		ctx, err := loadBookContext()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		if ctx.cfg.Books == nil {
			ctx.cfg.Books = make(map[string]string)
		}
		if _, exists := ctx.cfg.Books[name]; exists && !bookAddReplace {
			return handleError(ErrInvalidValue, fmt.Errorf("book '%s' already exists", name), "Use --replace to update the path")
		}

		ctx.cfg.Books[name] = absPath
		if bookAddPin {
			ctx.cfg.DefaultBook = name
		}
		if err := config.SaveTo(ctx.configPath, ctx.cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"name":        name,
				"path":        absPath,
				"default":     ctx.cfg.DefaultBook == name,
				"config_path": ctx.configPath,
			}, nil)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added book '%s' -> %s\n", name, absPath)
		return nil
	},
}

func init() {
	bookAddCmd.Flags().BoolVar(&bookAddReplace, "replace", false, "Replace the path of an existing book")
	bookAddCmd.Flags().BoolVar(&bookAddPin, "pin", false, "Also make it the default book")

	bookCmd.AddCommand(bookListCmd, bookCurrentCmd, bookUseCmd, bookClearCmd, bookAddCmd)
	rootCmd.AddCommand(bookCmd)
}
