package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pders01/algosearch/internal/debuglog"
	"github.com/pders01/algosearch/internal/platform"
	"github.com/pders01/algosearch/internal/report"
	"github.com/pders01/algosearch/internal/results"
	"github.com/pders01/algosearch/internal/session"
)

type searchOptions struct {
	leetcode   bool
	codeforces bool
	codechef   bool
	pages      int
	format     string
	style      string
}

func newSearchCmd(root *rootOptions) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Run one search and print the results",
		Long: `Run one search against the backend and print the first pages of results.

Without platform flags the platforms from ui.default_platforms are used.

Example:
  algosearch search two sum --leetcode --codeforces --pages 2 --format markdown`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, root, opts, strings.Join(args, " "))
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.leetcode, "leetcode", false, "Include LeetCode problems")
	flags.BoolVar(&opts.codeforces, "codeforces", false, "Include CodeForces problems")
	flags.BoolVar(&opts.codechef, "codechef", false, "Include CodeChef problems")
	flags.IntVarP(&opts.pages, "pages", "n", 1, "Number of pages to print")
	flags.StringVarP(&opts.format, "format", "o", "text", "Output format: text, json or markdown")
	flags.StringVar(&opts.style, "style", "", "glamour style for markdown output (default: detect from terminal)")
	return cmd
}

func (o *searchOptions) selection(defaults []string) (platform.Selection, error) {
	var ids []platform.ID
	if o.leetcode {
		ids = append(ids, platform.LeetCode)
	}
	if o.codeforces {
		ids = append(ids, platform.CodeForces)
	}
	if o.codechef {
		ids = append(ids, platform.CodeChef)
	}
	if len(ids) > 0 {
		return platform.NewSelection(ids...), nil
	}
	return platform.ParseSelection(defaults)
}

func runSearch(cmd *cobra.Command, root *rootOptions, opts *searchOptions, query string) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.pages < 1 {
		return fmt.Errorf("--pages must be at least 1, got %d", opts.pages)
	}

	cfg, err := root.load()
	if err != nil {
		return err
	}
	defer debuglog.Close()

	sel, err := opts.selection(cfg.UI.DefaultPlatforms)
	if err != nil {
		return err
	}

	registry, err := platform.LoadRegistry(cfg.UI.PlatformsFile)
	if err != nil {
		return fmt.Errorf("failed to load platforms: %w", err)
	}

	gateway, err := newGateway(cfg)
	if err != nil {
		return err
	}

	reducer := session.NewReducer(results.NewParser(registry))
	state := reducer.RunOnce(cmd.Context(), gateway, session.New(sel, cfg.UI.PageSize), query, opts.pages)

	failed := state.Status == session.StatusFailed
	if !failed || format == report.FormatJSON {
		out := report.New(state, registry)
		if err := report.Write(cmd.OutOrStdout(), out, format, report.Options{Style: opts.style}); err != nil {
			return err
		}
	}
	if failed {
		return fmt.Errorf("search failed: %w", state.Err)
	}
	return nil
}
