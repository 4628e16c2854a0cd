// Package cli defines Cobra command definitions for the recruit CLI.
// This file contains the root command, which runs the application form.
package cli

import (
	"fmt"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tezosjh/recruit/internal/config"
	"github.com/tezosjh/recruit/internal/log"
	"github.com/tezosjh/recruit/internal/submit"
	"github.com/tezosjh/recruit/internal/tui"
	"github.com/tezosjh/recruit/internal/tui/app"
)

var (
	configPath string
	envFile    string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "recruit",
	Short: "Terminal application form for Tezos Club JH recruitment",
	Long: `recruit asks applicants a fixed set of questions in a terminal
and forwards the answers to the recruitment spreadsheet webhook.

The webhook URL comes from RECRUIT_WEBHOOK_URL (optionally via .env)
or webhook.url in .recruit/config.yaml.`,
	Version:       versioninfo.Short(),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runForm,
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .recruit/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with RECRUIT_* variables")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log state transitions")

	rootCmd.AddCommand(stubCmd)
	rootCmd.AddCommand(historyCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func runForm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	interactive := tui.IsTTY()

	// The TUI owns the terminal, so console logging only happens in line mode.
	opts := log.Options{Debug: debug}
	if !interactive && debug {
		opts.Console = cmd.ErrOrStderr()
	}
	logger, closeLog, err := log.New(cfg.Log, opts)
	if err != nil {
		return err
	}
	defer closeLog()

	events, err := log.NewLogger(cfg.Log.EventsFile)
	if err != nil {
		return err
	}

	client, err := submit.NewClient(cfg.Webhook.URL,
		submit.WithTimeout(cfg.Webhook.Timeout),
		submit.WithLogger(logger),
		submit.WithEventLog(events),
	)
	if err != nil {
		return err
	}

	logger.Info("starting form",
		zap.Bool("interactive", interactive),
		zap.Duration("advance_delay", cfg.Form.AdvanceDelay),
	)

	model := tui.NewModel(cfg, client, logger, events)
	if !interactive {
		return tui.NewFallbackRunner(model, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
	}
	return tui.Run(app.New(model))
}
