package notify

import (
	"context"
	"log"
	"os/exec"
	"strings"
)

// CommandNotifier runs a shell command template for each event, e.g.
// "notify-send 'LaunchCheck' '{{.Title}}'". Best-effort: command failures
// are logged by the dispatcher.
type CommandNotifier struct {
	Command string
}

// NewCommandNotifier creates a CommandNotifier for the given template.
func NewCommandNotifier(command string) *CommandNotifier {
	return &CommandNotifier{Command: command}
}

// Name implements Adapter.
func (c *CommandNotifier) Name() string { return "command" }

// Send implements Adapter by executing the command template via sh.
func (c *CommandNotifier) Send(ctx context.Context, ev Event) error {
	if c.Command == "" {
		return nil
	}
	cmdStr := templateEvent(c.Command, ev)
	cmd := exec.CommandContext(ctx, "sh", "-c", cmdStr)
	if out, err := cmd.CombinedOutput(); err != nil {
		log.Printf("notify: command output: %s", strings.TrimSpace(string(out)))
		return err
	}
	return nil
}

// templateEvent replaces placeholders in the command template with event values.
func templateEvent(command string, ev Event) string {
	r := strings.NewReplacer(
		"{{.Type}}", ev.Type,
		"{{.Title}}", ev.Title,
		"{{.Body}}", ev.Body,
		"{{.Project}}", ev.ProjectName,
		"{{.ProjectID}}", ev.ProjectID,
	)
	return r.Replace(command)
}
