// Package discord implements the notify Adapter for Discord.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/media-code-now/launchcheck-pro/internal/notify"
)

// session abstracts the discordgo.Session methods we use, enabling test mocks.
type session interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Adapter posts launch events to a Discord channel as embeds.
type Adapter struct {
	sess      session
	channelID string
}

// AdapterOpts holds parameters for creating a Discord Adapter.
type AdapterOpts struct {
	BotToken  string // Discord bot token
	ChannelID string // channel to post to
	// For testing: inject a mock session instead of a real connection.
	Session session
}

// New creates a Discord Adapter.
func New(opts AdapterOpts) (*Adapter, error) {
	if opts.Session == nil && opts.BotToken == "" {
		return nil, fmt.Errorf("discord: bot token is required")
	}
	if opts.ChannelID == "" {
		return nil, fmt.Errorf("discord: channel ID is required")
	}

	s := opts.Session
	if s == nil {
		real, err := discordgo.New("Bot " + opts.BotToken)
		if err != nil {
			return nil, fmt.Errorf("discord: create session: %w", err)
		}
		s = real
	}
	return &Adapter{sess: s, channelID: opts.ChannelID}, nil
}

// Name implements notify.Adapter.
func (a *Adapter) Name() string { return "discord" }

// Send implements notify.Adapter by posting the event as an embed.
func (a *Adapter) Send(ctx context.Context, ev notify.Event) error {
	embed := &discordgo.MessageEmbed{
		Title:       ev.Title,
		Description: ev.Body,
		Color:       colorFor(ev),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Project", Value: ev.ProjectName, Inline: true},
			{Name: "Event", Value: ev.Type, Inline: true},
		},
	}
	if _, err := a.sess.ChannelMessageSendEmbed(a.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord: send embed: %w", err)
	}
	return nil
}

func colorFor(ev notify.Event) int {
	switch ev.Severity {
	case "success":
		return 0x36a64f
	case "warning":
		return 0xdaa038
	default:
		return 0x439fe0
	}
}
