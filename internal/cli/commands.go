package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"sword-picker/internal/api"
	"sword-picker/internal/cache"
	"sword-picker/internal/settings"
	"sword-picker/internal/versions"
)

func newCacheCmd() *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the cached catalog",
	}

	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch the catalog from bolls.life and cache it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cache.NewCache()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			catalog, err := api.NewClient().GetCatalog(ctx)
			if err != nil {
				return err
			}
			if err := c.StoreCatalog(catalog); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cached %d versions (%s)\n", catalog.Len(), categorySummary(catalog))
			return nil
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show the age and contents of the cached catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cache.NewCache()
			if err != nil {
				return err
			}
			return printCacheInfo(cmd.OutOrStdout(), c)
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the cached catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cache.NewCache()
			if err != nil {
				return err
			}
			return c.Clear()
		},
	}

	cacheCmd.AddCommand(refreshCmd, clearCmd, infoCmd)
	return cacheCmd
}

func printCacheInfo(w io.Writer, c *cache.Cache) error {
	age, err := c.Age()
	if errors.Is(err, cache.ErrNotCached) {
		fmt.Fprintln(w, "no cached catalog")
		return nil
	}
	if err != nil {
		return err
	}

	catalog, err := c.LoadCatalog()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "cached %s ago: %d versions (%s)\n", age.Round(time.Second), catalog.Len(), categorySummary(catalog))
	return nil
}

// categorySummary renders per-category counts, e.g. "20 BIBLE, 2 COMMENTARY".
func categorySummary(c *versions.Catalog) string {
	counts := c.CountByCategory()
	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, string(category))
	}
	sort.Strings(categories)

	parts := make([]string, 0, len(categories))
	for _, category := range categories {
		parts = append(parts, fmt.Sprintf("%d %s", counts[versions.Category(category)], category))
	}
	return strings.Join(parts, ", ")
}

type listOptions struct {
	resource string
	language string
	lang     string
	file     string
	menu     bool
}

func newListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list [QUERY]",
		Short: "List the versions the picker would show",
		Long: `List the versions the picker would show for a query and facet toggles.
A query searches initials and names and ignores the facets.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings.Load()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v, using defaults\n", err)
			}
			if cmd.Flags().Changed("lang") {
				s.Language = opts.lang
			}
			if cmd.Flags().Changed("catalog") {
				s.CatalogPath = opts.file
			}

			catalog, err := localCatalog(s.CatalogPath)
			if err != nil {
				return err
			}

			locale := versions.NewLocale(s.Language)
			facets := versions.ParseFacets(opts.resource, opts.language, locale)
			query := strings.Join(args, " ")
			if opts.menu {
				return listVersions(cmd.OutOrStdout(), versions.Visible(query, facets, catalog, locale))
			}

			var rows []versions.Record
			for _, key := range versions.Filter(query, facets, catalog, locale).Keys(catalog) {
				if r, ok := catalog.Lookup(key); ok {
					rows = append(rows, r)
				}
			}
			return listVersions(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().StringVar(&opts.resource, "type", "bibles", "resource type: bibles or commentaries")
	cmd.Flags().StringVar(&opts.language, "language", "", "language filter: langAll, langMy, langMyAndEnglish or langAncient")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "reading language tag")
	cmd.Flags().StringVar(&opts.file, "catalog", "", "local catalog JSON file")
	cmd.Flags().BoolVar(&opts.menu, "menu", false, "list in dropdown order, featured versions first")
	return cmd
}

// localCatalog reads a catalog without touching the network: the given
// file, else the cache, else the bundled one.
func localCatalog(path string) (*versions.Catalog, error) {
	if path != "" {
		return api.ReadCatalogFile(path)
	}
	if c, err := cache.NewCache(); err == nil {
		if catalog, err := c.LoadCatalog(); err == nil {
			return catalog, nil
		}
	}
	return api.DefaultCatalog(), nil
}

func listVersions(w io.Writer, rows []versions.Record) error {
	var data [][]string
	for _, r := range rows {
		data = append(data, []string{r.Initials, r.Name, r.LanguageName, string(r.Category)})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"KEY", "NAME", "LANGUAGE", "CATEGORY"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}
