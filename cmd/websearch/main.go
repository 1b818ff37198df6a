package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"websearch/internal/bing"
	"websearch/internal/config"
	"websearch/internal/eventbus"
	"websearch/internal/ui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var closeLog func()

	rootCmd := &cobra.Command{
		Use:     "websearch",
		Short:   "Search the web from the terminal",
		Long:    `websearch queries the Bing Web Search API and shows paginated results in an interactive terminal UI.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			closer, err := setupLogging(v.GetString("log_file"), v.GetString("log_level"))
			if err != nil {
				return err
			}
			closeLog = closer
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if closeLog != nil {
				closeLog()
			}
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: $XDG_CONFIG_HOME/websearch/config.toml)")
	flags.String("endpoint", "", "search API base URL")
	flags.String("api-key", "", "search API subscription key")
	flags.Duration("timeout", 0, "per-request timeout (default 10s)")
	flags.String("log-file", "websearch.log", "log file path")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().String("query", "", "search term to submit on start")

	bindFlags(v, rootCmd)
	rootCmd.AddCommand(newQueryCmd(v), newConfigCmd(v))

	return rootCmd
}

// bindFlags wires flags and environment variables into v. Flags win over
// environment variables, which win over the config file.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	_ = v.BindPFlag("config", flags.Lookup("config"))
	_ = v.BindPFlag("endpoint", flags.Lookup("endpoint"))
	_ = v.BindPFlag("api_key", flags.Lookup("api-key"))
	_ = v.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = v.BindPFlag("log_file", flags.Lookup("log-file"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))

	_ = v.BindEnv("config", "WEBSEARCH_CONFIG")
	_ = v.BindEnv("endpoint", "WEBSEARCH_ENDPOINT", "BING_SEARCH_ENDPOINT")
	_ = v.BindEnv("api_key", "WEBSEARCH_API_KEY", "BING_SEARCH_API_KEY")
	_ = v.BindEnv("timeout", "WEBSEARCH_TIMEOUT")
	_ = v.BindEnv("log_file", "WEBSEARCH_LOG_FILE")
	_ = v.BindEnv("log_level", "WEBSEARCH_LOG_LEVEL")
}

// configService returns the service for --config, or the default location
func configService(v *viper.Viper) config.ConfigService {
	if path := v.GetString("config"); path != "" {
		return config.NewConfigServiceAt(path)
	}
	return config.NewConfigService()
}

// loadConfig reads the config file and applies environment and flag
// overrides, then validates the result. An explicit --config must exist.
func loadConfig(v *viper.Viper) (*config.Config, error) {
	svc := configService(v)

	var (
		cfg *config.Config
		err error
	)
	if v.GetString("config") != "" {
		cfg, err = svc.LoadFromPath(svc.Path())
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	applyOverrides(v, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyOverrides copies environment and flag values over cfg
func applyOverrides(v *viper.Viper, cfg *config.Config) {
	if endpoint := strings.TrimSpace(v.GetString("endpoint")); endpoint != "" {
		cfg.Search.Endpoint = endpoint
	}
	if key := strings.TrimSpace(v.GetString("api_key")); key != "" {
		cfg.Search.APIKey = key
	}
	if timeout := v.GetDuration("timeout"); timeout > 0 {
		cfg.Search.Timeout = config.Duration(timeout)
	}
}

func newClient(cfg *config.Config) *bing.Client {
	return bing.New(bing.Options{
		Endpoint:  cfg.Search.Endpoint,
		APIKey:    cfg.Search.APIKey,
		Timeout:   cfg.Search.Timeout.Std(),
		UserAgent: "websearch/" + version,
	})
}

func runUI(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := loadConfig(v)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return err
	}

	bus := eventbus.New()
	defer bus.Close()
	unsubscribe := logEvents(bus)
	defer unsubscribe()

	model := ui.NewModel(bus, cfg, newClient(cfg))
	if term, _ := cmd.Flags().GetString("query"); strings.TrimSpace(term) != "" {
		model.SetInitialQuery(term)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	log.Info().Str("endpoint", cfg.Search.Endpoint).Msg("starting UI")
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited with error")
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
