package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/adey/inkwell/internal/client"
	"github.com/adey/inkwell/internal/config"
	"github.com/adey/inkwell/internal/machine"
	"github.com/adey/inkwell/internal/observability"
	"github.com/adey/inkwell/internal/tui"
)

var (
	cfgFile string
	baseURL string

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "Terminal client for an AI writing service",
	Long: "inkwell talks to a remote writing service: pick a tool (essay, report,\n" +
		"article, summary, explainer, social post), set topic, length and tone,\n" +
		"and export the result to clipboard, .txt or a printable document.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if baseURL != "" {
			cfg.Service.BaseURL = baseURL
		}
		logger = observability.NewLogger(cfg.Logger)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		m := machine.New(newGenerator())
		app := tui.New(cfg, m, logger)
		_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
		return err
	},
}

func newGenerator() *client.HTTP {
	return client.NewHTTP(
		cfg.Service.BaseURL,
		cfg.Service.Path,
		client.PayloadShape(cfg.Service.Shape),
		time.Duration(cfg.Service.TimeoutSeconds)*time.Second,
		logger,
	)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("command failed", zap.Error(err))
			_ = logger.Sync()
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logger != nil {
		_ = logger.Sync()
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default ~/.config/inkwell/config.toml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "generation service base URL (overrides config)")
}
