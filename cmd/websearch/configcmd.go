package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"websearch/internal/config"
)

var errConfigExists = errors.New("config file already exists")

func newConfigCmd(v *viper.Viper) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), configService(v).Path())
			return err
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with defaults and the given flags",
		Long: `init writes the default configuration, with any --endpoint, --api-key and
--timeout values (or their environment variables) applied, to the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return initConfig(v, force, cmd.OutOrStdout())
		},
	}
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")

	configCmd.AddCommand(pathCmd, initCmd)
	return configCmd
}

func initConfig(v *viper.Viper, force bool, out io.Writer) error {
	svc := configService(v)
	path := svc.Path()

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", errConfigExists, path)
	}

	cfg := config.DefaultConfig()
	applyOverrides(v, cfg)
	if err := svc.Save(cfg); err != nil {
		return err
	}

	log.Info().Str("path", path).Bool("has_api_key", cfg.Search.APIKey != "").Msg("config written")
	_, err := fmt.Fprintf(out, "Wrote %s\n", path)
	return err
}
