package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/media-code-now/launchcheck-pro/internal/apperrors"
	"github.com/media-code-now/launchcheck-pro/internal/checklist"
	"github.com/media-code-now/launchcheck-pro/internal/models"
	"github.com/media-code-now/launchcheck-pro/internal/notify"
	"github.com/media-code-now/launchcheck-pro/internal/progress"
	"gorm.io/gorm"
)

func handleListProjects(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		summaries, err := checklist.ProjectSummaries(db)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "projects": summaries})
	}
}

// projectRequest is the JSON body for creating or updating a project.
type projectRequest struct {
	Name       string `json:"name"`
	ClientName string `json:"clientName"`
	Domain     string `json:"domain"`
	Status     string `json:"status"`
	LaunchDate string `json:"launchDate"`
}

// parseLaunchDate accepts RFC 3339 timestamps or bare dates.
func parseLaunchDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, apperrors.Validationf("invalid launchDate %q, expected RFC 3339 or YYYY-MM-DD", s)
}

func handleCreateProject(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req projectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.Validationf("invalid request body: %v", err))
			return
		}
		launchDate, err := parseLaunchDate(req.LaunchDate)
		if err != nil {
			respondError(c, err)
			return
		}

		project, err := checklist.CreateProject(db, checklist.CreateProjectOpts{
			Name:       req.Name,
			ClientName: req.ClientName,
			Domain:     req.Domain,
			Status:     req.Status,
			LaunchDate: launchDate,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		detail, err := checklist.ProjectDetail(db, project.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		var items []models.ChecklistItemInstance
		for _, inst := range detail.ChecklistInstances {
			items = append(items, inst.Items...)
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"project": checklist.ProjectSummary{Project: *project, Summary: progress.Summarize(items)},
		})
	}
}

func handleGetProject(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := checklist.ProjectDetail(db, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": project})
	}
}

func handleUpdateProject(db *gorm.DB, notifier *notify.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req projectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.Validationf("invalid request body: %v", err))
			return
		}
		launchDate, err := parseLaunchDate(req.LaunchDate)
		if err != nil {
			respondError(c, err)
			return
		}

		prev, err := checklist.GetProject(db, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		project, err := checklist.UpdateProject(db, c.Param("id"), checklist.UpdateProjectOpts{
			Name:       req.Name,
			ClientName: req.ClientName,
			Domain:     req.Domain,
			Status:     req.Status,
			LaunchDate: launchDate,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		if notifier != nil && prev.Status != models.ProjectLive && project.Status == models.ProjectLive {
			go notifier.Notify(context.Background(), notify.Event{
				Type:        notify.EventProjectLive,
				Title:       fmt.Sprintf("%s is live", project.Name),
				Body:        fmt.Sprintf("Project for %s has launched.", project.ClientName),
				ProjectID:   project.ID,
				ProjectName: project.Name,
				Severity:    "success",
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    project,
			"message": "Project updated successfully",
		})
	}
}

func handleDeleteProject(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := checklist.DeleteProject(db, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted successfully"})
	}
}

func handleCreateSampleProject(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		launch := time.Now().AddDate(0, 0, 14)
		project, err := checklist.CreateProject(db, checklist.CreateProjectOpts{
			Name:       "Sample Website Launch",
			ClientName: "ACME Corp",
			Domain:     "acme-corp.com",
			Status:     models.ProjectInProgress,
			LaunchDate: &launch,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"projectId": project.ID,
			"message":   "Sample project created successfully",
		})
	}
}
