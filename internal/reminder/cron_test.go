package reminder

import (
	"testing"
	"time"
)

func TestNextCronDuration_Valid(t *testing.T) {
	d := nextCronDuration("0 9 * * *")
	if d <= 0 {
		t.Errorf("duration = %v, want > 0", d)
	}
	if d > 24*time.Hour {
		t.Errorf("duration = %v, want <= 24h for a daily schedule", d)
	}
}

func TestNextCronDuration_Invalid(t *testing.T) {
	d := nextCronDuration("not a cron expr")
	if d != 0 {
		t.Errorf("duration = %v, want 0 for invalid expression", d)
	}
}

func TestNextCronDuration_EveryMinute(t *testing.T) {
	d := nextCronDuration("* * * * *")
	if d <= 0 || d > time.Minute {
		t.Errorf("duration = %v, want in (0, 1m]", d)
	}
}
