// Package cli builds the sword-picker command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sword-picker/internal/api"
	"sword-picker/internal/cache"
	"sword-picker/internal/catalogwatch"
	"sword-picker/internal/settings"
	"sword-picker/internal/ui"
)

const envUsage = `
Environment Variables:
      SWORD_PICKER_LANG             Reading language, e.g. "fr" or "pt-BR"
      SWORD_PICKER_THEME            Color theme key
      SWORD_PICKER_CATALOG          Local catalog file to use and watch
      SWORD_PICKER_CLOSE_DELAY_MS   Hover-intent close delay in milliseconds
      SWORD_PICKER_DEBUG            Log at debug level
`

type options struct {
	lang      string
	theme     string
	catalog   string
	logFile   string
	offline   bool
	debug     bool
	noSave    bool
	printOnly bool
}

// NewCLI creates the root command.
func NewCLI() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:           "sword-picker",
		Short:         "Pick Bible versions and commentaries from a large catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.lang, "lang", "", "reading language tag")
	flags.StringVar(&opts.theme, "theme", "", "color theme (catppuccin-mocha, catppuccin-latte, dracula, solarized-dark)")
	flags.StringVar(&opts.catalog, "catalog", "", "local catalog JSON file, reloaded on change")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (default: sword-picker.log in the cache directory)")
	flags.BoolVar(&opts.offline, "offline", false, "don't fetch the catalog or previews")
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level")
	flags.BoolVar(&opts.noSave, "no-save", false, "don't persist selections")
	flags.BoolVar(&opts.printOnly, "print", false, "print the final selections on exit")

	rootCmd.SetUsageTemplate(rootCmd.UsageTemplate() + envUsage)
	rootCmd.AddCommand(newCacheCmd(), newListCmd())
	return rootCmd
}

func run(cmd *cobra.Command, opts options) error {
	s, err := settings.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v, using defaults\n", err)
	}
	s = applyFlags(cmd, s, opts)

	logClose, err := initLogging(opts.logFile, s.Debug)
	if err != nil {
		return err
	}
	defer logClose.Close()

	cfg := ui.Config{Settings: s}
	if !opts.offline {
		cfg.Client = api.NewClient()
	}
	if c, err := cache.NewCache(); err == nil {
		cfg.Cache = c
	} else {
		slog.Warn("catalog cache unavailable", "error", err)
	}
	if opts.noSave {
		cfg.Save = func(settings.Settings) error { return nil }
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if s.CatalogPath != "" {
		w, err := catalogwatch.New(s.CatalogPath)
		if err != nil {
			slog.Warn("not watching catalog", "path", s.CatalogPath, "error", err)
		} else {
			defer w.Close()
			go w.Run(ctx)
			cfg.Watcher = w
		}
	}

	slog.Info("starting picker", "language", s.Language, "theme", s.Theme, "offline", opts.offline)

	p := tea.NewProgram(
		ui.NewModel(cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	if opts.printOnly {
		if m, ok := final.(ui.Model); ok {
			fmt.Fprintln(cmd.OutOrStdout(), m.Value("primary"))
			fmt.Fprintln(cmd.OutOrStdout(), m.Value("compare"))
		}
	}
	return nil
}

// applyFlags layers explicitly set flags over file and env settings.
func applyFlags(cmd *cobra.Command, s settings.Settings, opts options) settings.Settings {
	flags := cmd.Flags()
	if flags.Changed("lang") {
		s.Language = opts.lang
	}
	if flags.Changed("theme") {
		s.Theme = opts.theme
	}
	if flags.Changed("catalog") {
		s.CatalogPath = opts.catalog
	}
	if flags.Changed("debug") {
		s.Debug = opts.debug
	}
	return s
}

// initLogging sends slog output to a file; the terminal belongs to the TUI.
func initLogging(path string, debug bool) (io.Closer, error) {
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(dir, "sword-picker")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log dir: %w", err)
		}
		path = filepath.Join(dir, "sword-picker.log")
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	})
	slog.SetDefault(slog.New(handler))
	return logFile, nil
}
