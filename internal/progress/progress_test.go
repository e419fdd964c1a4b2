package progress

import (
	"testing"

	"github.com/media-code-now/launchcheck-pro/internal/models"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     int
	}{
		{"empty", nil, 0},
		{"all done", []string{models.StatusDone, models.StatusDone}, 100},
		{"one of three", []string{models.StatusDone, models.StatusNotStarted, models.StatusNotStarted}, 33},
		{"half", []string{models.StatusDone, models.StatusNotStarted}, 50},
		{"two of three rounds up", []string{models.StatusDone, models.StatusDone, models.StatusNotStarted}, 67},
		{"none done", []string{models.StatusNotStarted, models.StatusInProgress}, 0},
		{"not applicable counts as not done", []string{models.StatusDone, models.StatusNotApplicable}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(tt.statuses); got != tt.want {
				t.Errorf("Compute(%v) = %d, want %d", tt.statuses, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	items := []models.ChecklistItemInstance{
		{Status: models.StatusDone},
		{Status: models.StatusDone},
		{Status: models.StatusNotStarted},
	}
	s := Summarize(items)
	if s.Done != 2 || s.Total != 3 || s.Percent != 67 {
		t.Errorf("Summarize = %+v, want Done=2 Total=3 Percent=67", s)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Done != 0 || s.Total != 0 || s.Percent != 0 {
		t.Errorf("Summarize(nil) = %+v, want all zero", s)
	}
}

func TestNextOnToggle(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{models.StatusDone, models.StatusNotStarted},
		{models.StatusNotStarted, models.StatusDone},
		{models.StatusInProgress, models.StatusDone},
		{models.StatusNotApplicable, models.StatusDone},
	}
	for _, tt := range tests {
		if got := NextOnToggle(tt.current); got != tt.want {
			t.Errorf("NextOnToggle(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestNextOnToggle_RoundTrip(t *testing.T) {
	// Toggling twice from NOT_STARTED returns to NOT_STARTED.
	if got := NextOnToggle(NextOnToggle(models.StatusNotStarted)); got != models.StatusNotStarted {
		t.Errorf("double toggle = %q, want %q", got, models.StatusNotStarted)
	}
}
