// Package reminder sweeps for projects approaching their launch date and
// emits launch-approaching notifications.
package reminder

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/media-code-now/launchcheck-pro/internal/models"
	"github.com/media-code-now/launchcheck-pro/internal/notify"
	"gorm.io/gorm"
)

// terminal statuses that never warrant a launch reminder.
var skipStatuses = []string{models.ProjectLive, models.ProjectCompleted, models.ProjectOnHold}

// Sweep finds projects whose launch date falls within window from now and
// which have not gone live, emitting one launch-approaching event each.
// A project is reminded at most once: ReminderSentAt is stamped on success.
// Returns the number of reminders sent.
func Sweep(ctx context.Context, db *gorm.DB, notifier *notify.Dispatcher, window time.Duration, now time.Time) (int, error) {
	if db == nil {
		return 0, fmt.Errorf("reminder: db is required")
	}
	if window <= 0 {
		return 0, fmt.Errorf("reminder: window must be positive")
	}

	var projects []models.Project
	err := db.Where("launch_date IS NOT NULL").
		Where("launch_date > ? AND launch_date <= ?", now, now.Add(window)).
		Where("status NOT IN ?", skipStatuses).
		Where("reminder_sent_at IS NULL").
		Order("launch_date ASC").
		Find(&projects).Error
	if err != nil {
		return 0, fmt.Errorf("reminder: query projects: %w", err)
	}

	sent := 0
	for _, p := range projects {
		days := int(p.LaunchDate.Sub(now).Hours() / 24)
		if notifier != nil {
			notifier.Notify(ctx, notify.Event{
				Type:        notify.EventLaunchApproaching,
				Title:       fmt.Sprintf("%s launches in %d days", p.Name, days),
				Body:        fmt.Sprintf("Launch date %s for %s.", p.LaunchDate.Format("2006-01-02"), p.ClientName),
				ProjectID:   p.ID,
				ProjectName: p.Name,
				Severity:    "warning",
			})
		}
		stamp := map[string]interface{}{"reminder_sent_at": now}
		if err := db.Model(&models.Project{}).Where("id = ?", p.ID).Updates(stamp).Error; err != nil {
			return sent, fmt.Errorf("reminder: stamp project %s: %w", p.ID, err)
		}
		sent++
	}
	return sent, nil
}

// DaemonOpts holds configuration for the reminder daemon.
type DaemonOpts struct {
	DB       *gorm.DB
	Notifier *notify.Dispatcher
	CronExpr string        // 5-field cron expression for sweep times
	Window   time.Duration // how far ahead to look for launch dates
	Out      io.Writer
}

// RunDaemon sweeps on the configured cron schedule until ctx is cancelled.
func RunDaemon(ctx context.Context, opts DaemonOpts) error {
	if opts.DB == nil {
		return fmt.Errorf("reminder: db is required")
	}
	if opts.Window <= 0 {
		return fmt.Errorf("reminder: window must be positive")
	}
	if _, err := cronParser.Parse(opts.CronExpr); err != nil {
		return fmt.Errorf("reminder: parse cron %q: %w", opts.CronExpr, err)
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	fmt.Fprintf(opts.Out, "Reminder daemon starting (cron %q, window %s)\n", opts.CronExpr, opts.Window)

	for {
		timer := time.NewTimer(nextCronDuration(opts.CronExpr))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		sent, err := Sweep(ctx, opts.DB, opts.Notifier, opts.Window, time.Now())
		if err != nil {
			log.Printf("reminder: sweep error: %v", err)
			continue
		}
		if sent > 0 {
			fmt.Fprintf(opts.Out, "Sent %d launch reminders\n", sent)
		}
	}
}
