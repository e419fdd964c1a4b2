package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/media-code-now/launchcheck-pro/internal/api"
	"github.com/media-code-now/launchcheck-pro/internal/db"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the LaunchCheck API server",
		Long:  "Serves the REST API for projects, templates, and checklist items.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath, port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to LaunchCheck config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (default: from config)")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string, port int) error {
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}

	notifier, err := buildNotifier(cfg)
	if err != nil {
		return err
	}

	if port == 0 {
		port = cfg.Server.Port
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(cmd.OutOrStdout(), "\nReceived %s, shutting down...\n", sig)
		cancel()
	}()

	return api.Start(ctx, api.StartOpts{
		DB:       gormDB,
		Port:     port,
		Out:      cmd.OutOrStdout(),
		Notifier: notifier,
	})
}
