package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/amrmerge/config"
	"github.com/katalvlaran/amrmerge/logx"
	"github.com/katalvlaran/amrmerge/telemetry"
)

var (
	configPath string
	verbose    bool

	appCfg *config.AppConfig
	logger logx.Logger
)

var rootCmd = &cobra.Command{
	Use:   "amrmerge",
	Short: "Distributed merge-tree / connected-component engine over AMR grids",
	Long: `amrmerge builds per-block masked boxes and local merge trees over a
scalar field, then drives the blocks through the bulk-synchronous
connected-component protocol until every block agrees on each
component's globally deepest vertex.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		appCfg = cfg

		level := logx.ParseLevel(cfg.Log.Level)
		if verbose {
			level = logx.LevelDebug
		}
		var out io.Writer = os.Stderr
		switch cfg.Log.Output {
		case "", "stderr":
		case "stdout":
			out = os.Stdout
		default:
			f, err := os.OpenFile(cfg.Log.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return err
			}
			out = f
		}
		logger = logx.NewDefaultLogger(level, out)
		logx.SetGlobal(logger)

		if cfg.Telemetry.Enabled {
			if _, err := telemetry.Init(context.Background()); err != nil {
				logger.Warn("telemetry init failed: %v", err)
			}
		}
		return nil
	},
}

// Execute runs the root command, exiting the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
