// Package optimistic implements client-side optimistic state for checklist
// items: apply a mutation to the displayed collection immediately, send the
// request, and reconcile when it settles.
package optimistic

import (
	"context"
	"fmt"
	"sync"

	"github.com/media-code-now/launchcheck-pro/internal/checklist"
	"github.com/media-code-now/launchcheck-pro/internal/models"
)

// Mutator performs the authoritative item mutation, typically an API call.
type Mutator interface {
	UpdateItem(ctx context.Context, id string, upd checklist.ItemUpdate) (*models.ChecklistItemInstance, error)
}

// Controller pairs a base item collection (the last authoritative state)
// with per-item optimistic projections and in-flight commits. Pending
// commits are independent per item ID; concurrent commits against the same
// ID are sequenced so only the latest one's outcome lands.
type Controller struct {
	mu      sync.Mutex
	order   []string
	base    map[string]models.ChecklistItemInstance
	overlay map[string]models.ChecklistItemInstance
	pending map[string]int
	seq     map[string]uint64
}

// NewController creates a Controller over the given authoritative items.
func NewController(items []models.ChecklistItemInstance) *Controller {
	c := &Controller{
		base:    make(map[string]models.ChecklistItemInstance, len(items)),
		overlay: make(map[string]models.ChecklistItemInstance),
		pending: make(map[string]int),
		seq:     make(map[string]uint64),
	}
	for _, it := range items {
		c.order = append(c.order, it.ID)
		c.base[it.ID] = it
	}
	return c
}

// Reset replaces the authoritative collection, e.g. after a fresh fetch.
// Optimistic projections are discarded; in-flight commits become stale.
func (c *Controller) Reset(items []models.ChecklistItemInstance) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = c.order[:0]
	c.base = make(map[string]models.ChecklistItemInstance, len(items))
	c.overlay = make(map[string]models.ChecklistItemInstance)
	for _, it := range items {
		c.order = append(c.order, it.ID)
		c.base[it.ID] = it
		c.seq[it.ID]++
	}
}

// Items returns the derived view: base items with optimistic projections
// merged in, in the original collection order.
func (c *Controller) Items() []models.ChecklistItemInstance {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]models.ChecklistItemInstance, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, c.viewLocked(id))
	}
	return items
}

// Item returns the derived view of a single item.
func (c *Controller) Item(id string) (models.ChecklistItemInstance, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.base[id]; !ok {
		return models.ChecklistItemInstance{}, false
	}
	return c.viewLocked(id), true
}

// Pending reports whether a commit for id is in flight.
func (c *Controller) Pending(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[id] > 0
}

// ApplyOptimistic merges upd into the derived view of id without touching
// the base collection. Unknown IDs are a silent no-op.
func (c *Controller) ApplyOptimistic(id string, upd checklist.ItemUpdate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyLocked(id, upd)
}

// Commit applies upd optimistically, invokes the mutator, and reconciles:
// on success the authoritative response becomes the new base; on failure the
// projection rolls back to the pre-update value. The pending flag for id is
// always cleared when the call settles. If a newer commit for the same id
// started while this one was in flight, this one's response is discarded.
func (c *Controller) Commit(ctx context.Context, id string, upd checklist.ItemUpdate, m Mutator) error {
	c.mu.Lock()
	c.applyLocked(id, upd)
	c.seq[id]++
	mine := c.seq[id]
	c.pending[id]++
	c.mu.Unlock()

	item, err := m.UpdateItem(ctx, id, upd)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending[id] > 0 {
		c.pending[id]--
	}

	// A newer commit (or a Reset) owns the state now; drop this outcome.
	if c.seq[id] != mine {
		if err != nil {
			return fmt.Errorf("optimistic: commit %s (superseded): %w", id, err)
		}
		return nil
	}

	if err != nil {
		delete(c.overlay, id)
		return fmt.Errorf("optimistic: commit %s: %w", id, err)
	}
	if item != nil {
		if _, known := c.base[id]; known {
			c.base[id] = *item
		}
	}
	delete(c.overlay, id)
	return nil
}

func (c *Controller) applyLocked(id string, upd checklist.ItemUpdate) {
	if _, ok := c.base[id]; !ok {
		return
	}
	it := c.viewLocked(id)
	if upd.Status != nil {
		it.Status = *upd.Status
	}
	if upd.Note != nil {
		it.Note = *upd.Note
	}
	if upd.Assignee != nil {
		it.Assignee = *upd.Assignee
	}
	if upd.RelatedURL != nil {
		it.RelatedURL = *upd.RelatedURL
	}
	c.overlay[id] = it
}

func (c *Controller) viewLocked(id string) models.ChecklistItemInstance {
	if it, ok := c.overlay[id]; ok {
		return it
	}
	return c.base[id]
}
