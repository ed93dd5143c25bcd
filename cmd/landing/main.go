package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"landing/internal/bootstrap"
	"landing/internal/platform/config"
	"landing/internal/platform/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootFlags struct {
	contentDir string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "landing",
		Short:         "Terminal landing page with a scripted chatbot",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.contentDir, "content", "", "directory overriding the built-in dialog.yaml and page.yaml")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "debug|info|warn|error (default from LANDING_LOG_LEVEL or info)")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newChatCmd(flags))
	root.AddCommand(newScriptCmd(flags))
	root.AddCommand(newCardsCmd(flags))
	root.AddCommand(newSphereCmd(flags))
	root.AddCommand(newVersionCmd())
	return root
}

func loadConfig(flags *rootFlags) (config.Config, slog.Level, error) {
	cfg, err := config.New(flags.contentDir)
	if err != nil {
		return config.Config{}, slog.LevelInfo, err
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return config.Config{}, slog.LevelInfo, err
	}
	return cfg, level, nil
}

// loadApp wires the modules for one-shot commands, logging to stderr.
func loadApp(cmd *cobra.Command, flags *rootFlags) (*bootstrap.App, error) {
	cfg, level, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.New(cmd.ErrOrStderr(), level)), nil
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the full-screen landing page",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, level, err := loadConfig(flags)
			if err != nil {
				return err
			}
			logger, closeLog, err := logging.OpenFile(cfg.LogFile, level)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()
			logger.Info("landing tui starting", "fps", cfg.FPS, "particles", cfg.ParticleCount, "content", cfg.ContentDir)
			return bootstrap.RunTUI(bootstrap.New(cfg, logger))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the banner and version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			printBanner(cmd.OutOrStdout())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "landing version %s\n", version)
			return nil
		},
	}
}
