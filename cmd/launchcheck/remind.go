package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/media-code-now/launchcheck-pro/internal/reminder"
	"github.com/spf13/cobra"
)

func newRemindCmd() *cobra.Command {
	var (
		configPath string
		daemon     bool
		windowDays int
	)

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Send launch date reminders",
		Long: "Notifies about projects whose launch date falls within the reminder window.\n" +
			"Runs a single sweep by default; with --daemon it keeps sweeping on the\n" +
			"configured cron schedule until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemind(cmd, configPath, daemon, windowDays)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to LaunchCheck config file")
	cmd.Flags().BoolVarP(&daemon, "daemon", "d", false, "keep sweeping on the configured cron schedule")
	cmd.Flags().IntVar(&windowDays, "window", 0, "override the reminder window in days")
	return cmd
}

func runRemind(cmd *cobra.Command, configPath string, daemon bool, windowDays int) error {
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	notifier, err := buildNotifier(cfg)
	if err != nil {
		return err
	}
	if notifier == nil {
		return fmt.Errorf("no notification adapters configured, nothing to remind with")
	}

	if windowDays <= 0 {
		windowDays = cfg.Reminder.WindowDays
	}
	window := time.Duration(windowDays) * 24 * time.Hour
	out := cmd.OutOrStdout()

	if !daemon {
		sent, err := reminder.Sweep(cmd.Context(), gormDB, notifier, window, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Sent %d reminders\n", sent)
		return nil
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(out, "\nShutting down reminder daemon...")
		cancel()
	}()

	fmt.Fprintf(out, "Reminder daemon running (schedule %q, window %dd)\n", cfg.Reminder.Cron, windowDays)
	return reminder.RunDaemon(ctx, reminder.DaemonOpts{
		DB:       gormDB,
		Notifier: notifier,
		CronExpr: cfg.Reminder.Cron,
		Window:   window,
		Out:      out,
	})
}
