package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pders01/algosearch/internal/config"
	"github.com/pders01/algosearch/internal/debuglog"
	"github.com/pders01/algosearch/internal/platform"
	"github.com/pders01/algosearch/internal/search"
	"github.com/pders01/algosearch/internal/tui"
)

type rootOptions struct {
	configPath string
	endpoint   string
	logLevel   string
	quiet      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "algosearch",
		Short: "Search competitive programming problems",
		Long: `algosearch searches LeetCode, CodeForces and CodeChef problems through a
search backend and shows the results in an interactive terminal UI.

Run without a subcommand to start the UI, or use "algosearch search" for
a one-shot query that prints to stdout.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flags.StringVar(&opts.endpoint, "endpoint", "", "Search backend base URL (overrides config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error, off (overrides config)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Skip startup banner")

	cmd.AddCommand(
		newSearchCmd(opts),
		newVersionCmd(),
		newGenerateConfigCmd(),
	)
	return cmd
}

// load reads the config file and applies command line overrides. The
// returned config has logging already set up.
func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if o.endpoint != "" {
		cfg.Search.Endpoint = o.endpoint
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	if err := debuglog.Setup(debuglog.ParseLogLevel(cfg.Log.Level), cfg.Log.File); err != nil {
		return nil, err
	}
	tui.ApplyColors(cfg.UI.Colors)
	return cfg, nil
}

// newGateway wires the HTTP client and limiter for cfg.
func newGateway(cfg *config.Config) (*search.Gateway, error) {
	client, err := search.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	debuglog.Infof("using search endpoint %s", client.URL())
	return search.NewGateway(client, cfg.Search.RateLimit, cfg.Search.Burst), nil
}

func runTUI(opts *rootOptions) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	defer debuglog.Close()

	registry, err := platform.LoadRegistry(cfg.UI.PlatformsFile)
	if err != nil {
		return fmt.Errorf("failed to load platforms: %w", err)
	}

	gateway, err := newGateway(cfg)
	if err != nil {
		return err
	}

	if !opts.quiet {
		tui.ShowBanner(Version)
	}

	app := tui.NewApp(cfg, tui.Options{Gateway: gateway, Registry: registry})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
