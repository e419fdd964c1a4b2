package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/media-code-now/launchcheck-pro/internal/apperrors"
	"github.com/media-code-now/launchcheck-pro/internal/checklist"
	"github.com/media-code-now/launchcheck-pro/internal/models"
	"github.com/media-code-now/launchcheck-pro/internal/notify"
	"gorm.io/gorm"
)

func handleGetItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := checklist.GetItem(db, c.Param("itemId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
	}
}

func handleUpdateItem(db *gorm.DB, notifier *notify.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upd checklist.ItemUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			respondError(c, apperrors.Validationf("invalid request body: %v", err))
			return
		}
		if upd.Empty() {
			respondError(c, apperrors.Validationf(
				"at least one of status, note, assignee, relatedUrl is required"))
			return
		}

		item, err := checklist.UpdateItem(db, c.Param("itemId"), upd)
		if err != nil {
			respondError(c, err)
			return
		}

		message := "Checklist item updated"
		if upd.Status != nil && item.TemplateItem != nil {
			message = fmt.Sprintf("Task %q marked as %s", item.TemplateItem.Title,
				strings.ToLower(strings.ReplaceAll(*upd.Status, "_", " ")))
		}

		if upd.Status != nil && *upd.Status == models.StatusDone {
			go notifyItemDone(db, notifier, item)
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": item, "message": message})
	}
}

// notifyItemDone emits completion events after a status change to DONE.
// Best-effort: runs off the request path and swallows lookup failures.
func notifyItemDone(db *gorm.DB, notifier *notify.Dispatcher, item *models.ChecklistItemInstance) {
	if notifier == nil || item == nil {
		return
	}

	title := ""
	if item.TemplateItem != nil {
		title = item.TemplateItem.Title
	}
	ev := notify.Event{
		Type:     notify.EventItemCompleted,
		Title:    fmt.Sprintf("Task completed: %s", title),
		Severity: "info",
	}

	summary, err := checklist.InstanceProgress(db, item.ChecklistID)
	if err == nil && summary.Total > 0 && summary.Done == summary.Total {
		ev = notify.Event{
			Type:     notify.EventChecklistCompleted,
			Title:    "Checklist complete",
			Body:     fmt.Sprintf("All %d tasks are done.", summary.Total),
			Severity: "success",
		}
	}
	notifier.Notify(context.Background(), ev)
}
