package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/media-code-now/launchcheck-pro/internal/config"
	"github.com/media-code-now/launchcheck-pro/internal/db"
	"github.com/media-code-now/launchcheck-pro/internal/models"
	"github.com/media-code-now/launchcheck-pro/internal/notify"
	discordadapter "github.com/media-code-now/launchcheck-pro/internal/notify/discord"
	slackadapter "github.com/media-code-now/launchcheck-pro/internal/notify/slack"
	"gorm.io/gorm"
)

const defaultConfigPath = "launchcheck.yaml"

// loadConfig reads the config file, falling back to defaults when the
// default path does not exist.
func loadConfig(configPath string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		if configPath == defaultConfigPath && errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// connectFromConfig loads config and opens the database.
func connectFromConfig(configPath string) (*config.Config, *gorm.DB, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, gormDB, nil
}

// buildNotifier constructs the notification dispatcher from config. Adapters
// with no credentials configured are skipped.
func buildNotifier(cfg *config.Config) (*notify.Dispatcher, error) {
	var adapters []notify.Adapter

	if cfg.Notify.Slack.Token != "" {
		a, err := slackadapter.New(slackadapter.AdapterOpts{
			BotToken:  cfg.Notify.Slack.Token,
			ChannelID: cfg.Notify.Slack.Channel,
		})
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, a)
	}
	if cfg.Notify.Discord.Token != "" {
		a, err := discordadapter.New(discordadapter.AdapterOpts{
			BotToken:  cfg.Notify.Discord.Token,
			ChannelID: cfg.Notify.Discord.Channel,
		})
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, a)
	}
	if cfg.Notify.Command != "" {
		adapters = append(adapters, notify.NewCommandNotifier(cfg.Notify.Command))
	}

	if len(adapters) == 0 {
		return nil, nil
	}
	return notify.NewDispatcher(adapters...), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func statusGlyph(status string) string {
	switch status {
	case models.StatusDone:
		return "[x]"
	case models.StatusInProgress:
		return "[~]"
	case models.StatusNotApplicable:
		return "[-]"
	default:
		return "[ ]"
	}
}
