// Package notify delivers launch events to chat platforms (Slack, Discord)
// and local commands.
package notify

import (
	"context"
	"log"
	"time"
)

// Event types emitted by the service.
const (
	EventItemCompleted      = "item_completed"
	EventChecklistCompleted = "checklist_completed"
	EventProjectLive        = "project_live"
	EventLaunchApproaching  = "launch_approaching"
)

// Event is a launch notification formatted for delivery.
type Event struct {
	Type        string    // one of the Event* constants
	Title       string    // headline, e.g. "Pre-launch checklist complete"
	Body        string    // detail text
	ProjectID   string
	ProjectName string
	Severity    string // "info", "success", "warning"
	OccurredAt  time.Time
}

// Adapter is the interface platform-specific notifiers implement.
type Adapter interface {
	// Name identifies the adapter in logs, e.g. "slack".
	Name() string

	// Send delivers the event to the platform.
	Send(ctx context.Context, ev Event) error
}

// Dispatcher fans an event out to every configured adapter. Delivery is
// best-effort: adapter failures are logged, never returned.
type Dispatcher struct {
	adapters []Adapter
}

// NewDispatcher creates a Dispatcher over the given adapters.
func NewDispatcher(adapters ...Adapter) *Dispatcher {
	return &Dispatcher{adapters: adapters}
}

// Notify delivers ev to all adapters.
func (d *Dispatcher) Notify(ctx context.Context, ev Event) {
	if d == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}
	for _, a := range d.adapters {
		if err := a.Send(ctx, ev); err != nil {
			log.Printf("notify: %s send failed: %v", a.Name(), err)
		}
	}
}
