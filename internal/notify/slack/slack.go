// Package slack implements the notify Adapter for Slack using the Web API.
package slack

import (
	"context"
	"fmt"

	"github.com/media-code-now/launchcheck-pro/internal/notify"
	slackapi "github.com/slack-go/slack"
)

// client abstracts the Slack API methods we use, enabling test mocks.
type client interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

// Adapter posts launch events to a Slack channel.
type Adapter struct {
	client    client
	channelID string
}

// AdapterOpts holds parameters for creating a Slack Adapter.
type AdapterOpts struct {
	BotToken  string // xoxb-... Slack bot token
	ChannelID string // channel to post to
	// For testing: inject a mock client instead of the real Slack API.
	Client client
}

// New creates a Slack Adapter.
func New(opts AdapterOpts) (*Adapter, error) {
	if opts.Client == nil && opts.BotToken == "" {
		return nil, fmt.Errorf("slack: bot token is required")
	}
	if opts.ChannelID == "" {
		return nil, fmt.Errorf("slack: channel ID is required")
	}

	c := opts.Client
	if c == nil {
		c = slackapi.New(opts.BotToken)
	}
	return &Adapter{client: c, channelID: opts.ChannelID}, nil
}

// Name implements notify.Adapter.
func (a *Adapter) Name() string { return "slack" }

// Send implements notify.Adapter by posting the event as an attachment.
func (a *Adapter) Send(ctx context.Context, ev notify.Event) error {
	attachment := slackapi.Attachment{
		Title: ev.Title,
		Text:  ev.Body,
		Color: colorFor(ev),
		Fields: []slackapi.AttachmentField{
			{Title: "Project", Value: ev.ProjectName, Short: true},
			{Title: "Event", Value: ev.Type, Short: true},
		},
	}
	_, _, err := a.client.PostMessageContext(ctx, a.channelID,
		slackapi.MsgOptionAttachments(attachment))
	if err != nil {
		return fmt.Errorf("slack: post message: %w", err)
	}
	return nil
}

func colorFor(ev notify.Event) string {
	switch ev.Severity {
	case "success":
		return "#36a64f"
	case "warning":
		return "#daa038"
	default:
		return "#439fe0"
	}
}
