package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/pizzafactory/app"
	"github.com/kilianp07/pizzafactory/config"
	"github.com/kilianp07/pizzafactory/infra/logger"
)

var (
	cfgPath string
	quiet   bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:               "pizzafactory",
	Short:             "Regional pizza factory",
	Long:              "Prompts for a region and a pizza type, then prepares, bakes and serves the matching regional pizza.",
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "do not print the welcome banner")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = c
	logger.Configure(logger.Options{
		Writer:  cmd.ErrOrStderr(),
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
	})
	return nil
}

// withService builds the service, runs fn and flushes the sinks.
func withService(cmd *cobra.Command, fn func(ctx context.Context, svc *app.Service) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return fn(ctx, svc)
}

func run(cmd *cobra.Command, args []string) error {
	return withService(cmd, func(ctx context.Context, svc *app.Service) error {
		if !quiet {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), app.Banner); err != nil {
				return err
			}
		}
		return svc.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	})
}
