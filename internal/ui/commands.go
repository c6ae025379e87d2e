package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sword-picker/internal/api"
	"sword-picker/internal/catalogwatch"
	"sword-picker/internal/picker"
	"sword-picker/internal/settings"
	"sword-picker/internal/versions"
)

// John 3:16, shown in every picked version on confirm.
const (
	previewBook    = 43
	previewChapter = 3
	previewVerse   = 16
)

// loadCatalog tries the configured file, then bolls, then the cache, and
// finally the bundled catalog.
func loadCatalog(cfg Config) tea.Cmd {
	return func() tea.Msg {
		if path := cfg.Settings.CatalogPath; path != "" {
			c, err := api.ReadCatalogFile(path)
			if err != nil {
				return errMsg{fmt.Errorf("load catalog file: %w", err)}
			}
			return catalogLoadedMsg{catalog: c, source: path}
		}

		if cfg.Client != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
			defer cancel()

			c, err := cfg.Client.GetCatalog(ctx)
			if err == nil {
				if cfg.Cache != nil {
					if err := cfg.Cache.StoreCatalog(c); err != nil {
						slog.Warn("could not cache catalog", "error", err)
					}
				}
				return catalogLoadedMsg{catalog: c, source: "bolls.life"}
			}
			slog.Warn("catalog fetch failed, falling back", "error", err)
		}

		if cfg.Cache != nil {
			c, err := cfg.Cache.LoadCatalog()
			if err == nil {
				return catalogLoadedMsg{catalog: c, source: "cache"}
			}
			slog.Info("no cached catalog", "error", err)
		}

		return catalogLoadedMsg{catalog: api.DefaultCatalog(), source: "bundled"}
	}
}

func waitForCatalog(w *catalogwatch.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case c, ok := <-w.Updates():
			if !ok {
				return nil
			}
			return catalogLoadedMsg{catalog: c, source: "reload"}
		case err := <-w.Errors():
			return watchErrMsg{err}
		}
	}
}

func loadPreview(client *api.Client, keys []string) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return errMsg{errors.New("offline: no preview available")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		verses, err := client.GetParallelVerses(ctx, api.ParallelVerseRequest{
			Translations: keys,
			Verses:       []int{previewVerse},
			Chapter:      previewChapter,
			Book:         previewBook,
		})
		if err != nil {
			return errMsg{err}
		}
		return previewLoadedMsg{order: keys, verses: verses}
	}
}

func saveSettings(save func(settings.Settings) error, s settings.Settings) tea.Cmd {
	return func() tea.Msg {
		if err := save(s); err != nil {
			return errMsg{fmt.Errorf("save settings: %w", err)}
		}
		return savedMsg{}
	}
}

func armCloseTimer(t picker.CloseTimer) tea.Cmd {
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return closeTimerMsg{timer: t}
	})
}

// pickedKeys is every key in the primary and compare fields, first
// occurrence wins.
func pickedKeys(primary, compare string) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, k := range append(versions.ParseSelection(primary), versions.ParseSelection(compare)...) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

var htmlTags = regexp.MustCompile(`<[^>]*>`)

func stripHTMLTags(s string) string {
	return htmlTags.ReplaceAllString(s, "")
}
