package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/media-code-now/launchcheck-pro/internal/notify"
	"gorm.io/gorm"
)

// registerRoutes sets up all API routes on the Gin router.
func registerRoutes(router *gin.Engine, db *gorm.DB, notifier *notify.Dispatcher) {
	router.GET("/healthz", handleHealth)

	api := router.Group("/api")

	// Checklist items.
	api.GET("/checklist-items/:itemId", handleGetItem(db))
	api.PUT("/checklist-items/:itemId", handleUpdateItem(db, notifier))

	// Projects.
	api.GET("/projects", handleListProjects(db))
	api.POST("/projects/create", handleCreateProject(db))
	api.GET("/projects/:id", handleGetProject(db))
	api.PUT("/projects/:id", handleUpdateProject(db, notifier))
	api.DELETE("/projects/:id", handleDeleteProject(db))

	// Templates.
	api.GET("/templates", handleListTemplates(db))
	api.POST("/templates/create", handleCreateTemplate(db))

	// Demo helper.
	api.POST("/sample-project", handleCreateSampleProject(db))
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
