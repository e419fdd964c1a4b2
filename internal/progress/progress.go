// Package progress computes checklist completion and the status toggle.
// All functions are pure.
package progress

import (
	"math"

	"github.com/media-code-now/launchcheck-pro/internal/models"
)

// Compute returns the completion percentage for a set of item statuses:
// round-half-up of 100 * done / total, or 0 for an empty set.
func Compute(statuses []string) int {
	if len(statuses) == 0 {
		return 0
	}
	done := 0
	for _, s := range statuses {
		if s == models.StatusDone {
			done++
		}
	}
	return int(math.Floor(float64(done)/float64(len(statuses))*100 + 0.5))
}

// ComputeItems is Compute over item instances.
func ComputeItems(items []models.ChecklistItemInstance) int {
	statuses := make([]string, len(items))
	for i, it := range items {
		statuses[i] = it.Status
	}
	return Compute(statuses)
}

// Summary holds completion counts for a collection of items.
type Summary struct {
	Done    int `json:"completedTasks"`
	Total   int `json:"totalTasks"`
	Percent int `json:"progress"`
}

// Summarize returns done/total counts plus the completion percentage.
func Summarize(items []models.ChecklistItemInstance) Summary {
	s := Summary{Total: len(items)}
	for _, it := range items {
		if it.Status == models.StatusDone {
			s.Done++
		}
	}
	s.Percent = ComputeItems(items)
	return s
}

// NextOnToggle returns the status a two-state toggle moves to: DONE becomes
// NOT_STARTED, everything else becomes DONE. IN_PROGRESS and NOT_APPLICABLE
// are reachable only through explicit status selection, never through toggle.
func NextOnToggle(current string) string {
	if current == models.StatusDone {
		return models.StatusNotStarted
	}
	return models.StatusDone
}
