package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"corona-stats/internal/cache"
	"corona-stats/internal/config"
	"corona-stats/internal/israel"
	"corona-stats/internal/messages"
	"corona-stats/internal/providers/coronaapi"
	"corona-stats/internal/providers/moh"
	"corona-stats/internal/worldwide"

	"github.com/spf13/cobra"
)

// services are built lazily so that --help never touches config or network
type services struct {
	worldwide worldwide.Service
	israel    israel.Service
	messages  *messages.Catalog
	reverse   bool
}

type rootOptions struct {
	verbose bool
	timeout time.Duration
	reverse bool
	lang    string
}

// newRootCmd builds the command tree. A non-nil svc skips configuration
// loading and is used as-is.
func newRootCmd(svc *services) *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:   "covidctl",
		Short: "COVID-19 figures by country or Israeli city",
		Long: `covidctl queries the worldwide corona-api and the Israeli Ministry of
Health dashboard and prints fixed-layout text blocks.

Configuration is read from config.yaml and CORONA_STATS_* variables, the
same way the web server reads it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if svc != nil {
				return nil
			}
			built, err := buildServices(cmd, opts)
			if err != nil {
				return err
			}
			svc = built
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "Upstream request timeout (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&opts.reverse, "reverse-hebrew", false, "Reverse Hebrew text for left-to-right terminals")
	rootCmd.PersistentFlags().StringVar(&opts.lang, "lang", "", "Message language, he or en (overrides config)")

	get := func() *services { return svc }
	rootCmd.AddCommand(
		newCountryCmd(get),
		newCityCmd(get),
		newGeneralCmd(get),
	)

	return rootCmd
}

func buildServices(cmd *cobra.Command, opts rootOptions) (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	switch {
	case opts.verbose:
		cfg.Log.Level = "debug"
	case cfg.Log.Level == "" || cfg.Log.Level == "info":
		// Keep the terminal quiet unless asked
		cfg.Log.Level = "warn"
	}
	if opts.timeout > 0 {
		cfg.Upstream.Timeout = opts.timeout
	}
	if opts.lang != "" {
		cfg.App.Locale = opts.lang
	}

	logger := cfg.NewLoggerTo(cmd.ErrOrStderr())

	catalog, err := messages.New(cfg.App.Locale)
	if err != nil {
		return nil, err
	}

	ws, err := worldwide.NewWorldwideService(
		coronaapi.NewClient(cfg.Upstream.WorldwideURL, cfg.Upstream.Timeout, logger),
		logger,
	)
	if err != nil {
		return nil, err
	}

	// One-shot process, the memory store only dedups the two general loads
	is := israel.NewIsraelService(
		moh.NewClient(cfg.Upstream.MohURL, cfg.Upstream.Timeout, logger),
		cache.NewMemoryStore(),
		cfg.Cache.TTL,
		logger,
	)

	return &services{
		worldwide: ws,
		israel:    is,
		messages:  catalog,
		reverse:   opts.reverse || cfg.Israel.ReverseHebrew,
	}, nil
}

func newCountryCmd(svc func() *services) *cobra.Command {
	return &cobra.Command{
		Use:     "country <name>",
		Short:   "Print the latest figures for a country",
		Example: "  covidctl country israel\n  covidctl country united kingdom",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := svc()
			report, err := s.worldwide.Lookup(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				if errors.Is(err, worldwide.ErrCountryNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), s.messages.Get(messages.NotFound))
					return nil
				}
				return fmt.Errorf("%s: %w", s.messages.Get(messages.CountryDataError), err)
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Text())
			return nil
		},
	}
}

func newCityCmd(svc func() *services) *cobra.Command {
	return &cobra.Command{
		Use:   "city <name>",
		Short: "Print the latest figures for an Israeli city (exact Hebrew name)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := svc()
			report, err := s.israel.FindCity(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				if errors.Is(err, israel.ErrCityNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), s.messages.Get(messages.NotFound))
					return nil
				}
				return fmt.Errorf("%s: %w", s.messages.Get(messages.CityDataError), err)
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Text(israel.TextOptions{ReverseHebrew: s.reverse}))
			return nil
		},
	}
}

func newGeneralCmd(svc func() *services) *cobra.Command {
	return &cobra.Command{
		Use:   "general",
		Short: "Print Israel's national figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := svc()
			report, err := s.israel.GeneralData(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s: %w", s.messages.Get(messages.GeneralDataError), err)
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Text())
			return nil
		},
	}
}
