package optimistic

import (
	"context"
	"fmt"

	"github.com/media-code-now/launchcheck-pro/internal/checklist"
	"github.com/media-code-now/launchcheck-pro/internal/progress"
)

// ToggleStatus commits the two-state toggle for an item: DONE goes back to
// NOT_STARTED, everything else goes to DONE. The toggle reads the current
// derived view, so toggling twice before the first commit settles flips the
// status back rather than repeating the same write.
func (c *Controller) ToggleStatus(ctx context.Context, id string, m Mutator) error {
	it, ok := c.Item(id)
	if !ok {
		return fmt.Errorf("optimistic: toggle %s: unknown item", id)
	}
	next := progress.NextOnToggle(it.Status)
	return c.Commit(ctx, id, checklist.ItemUpdate{Status: &next}, m)
}

// Progress returns the completion percentage over the derived view, so
// optimistic projections count immediately.
func (c *Controller) Progress() int {
	return progress.ComputeItems(c.Items())
}
