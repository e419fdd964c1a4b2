package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/media-code-now/launchcheck-pro/internal/db"
	"github.com/spf13/cobra"
)

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database management commands",
	}

	cmd.AddCommand(newDBInitCmd())
	cmd.AddCommand(newDBMigrateCmd())
	cmd.AddCommand(newDBSeedCmd())
	cmd.AddCommand(newDBResetCmd())
	return cmd
}

func newDBInitCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the LaunchCheck database",
		Long:  "Migrates all tables and seeds the default pre-launch and post-launch templates.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBInit(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to LaunchCheck config file")
	return cmd
}

func runDBInit(cmd *cobra.Command, configPath string) error {
	out := cmd.OutOrStdout()

	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Connected to %s database\n", cfg.Database.Driver)

	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}
	fmt.Fprintf(out, "Migrated %d tables\n", len(db.AllModels()))

	created, err := db.Seed(gormDB)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Seeded %d templates\n", created)

	fmt.Fprintln(out, "\nLaunchCheck database initialized successfully.")
	return nil
}

func newDBMigrateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update all database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			if err := db.AutoMigrate(gormDB); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d tables\n", len(db.AllModels()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to LaunchCheck config file")
	return cmd
}

func newDBSeedCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the default checklist templates",
		Long:  "Inserts the default pre-launch and post-launch templates. Existing templates are left untouched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			created, err := db.Seed(gormDB)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d templates\n", created)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to LaunchCheck config file")
	return cmd
}

func newDBResetCmd() *cobra.Command {
	var (
		configPath string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop and re-initialize the LaunchCheck database",
		Long:  "Drops all tables, re-creates them, and seeds the default templates. Destroys all data.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBReset(cmd, configPath, yes)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to LaunchCheck config file")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")
	return cmd
}

func runDBReset(cmd *cobra.Command, configPath string, yes bool) error {
	out := cmd.OutOrStdout()

	if !yes {
		fmt.Fprint(out, "This destroys all projects and checklists. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	if err := db.Reset(gormDB); err != nil {
		return err
	}
	created, err := db.Seed(gormDB)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Database reset, %d templates seeded\n", created)
	return nil
}
