package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/media-code-now/launchcheck-pro/internal/apperrors"
	"github.com/media-code-now/launchcheck-pro/internal/checklist"
	"gorm.io/gorm"
)

func handleListTemplates(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		templates, err := checklist.ListTemplates(db)
		if err != nil {
			respondError(c, err)
			return
		}

		type templateBrief struct {
			Type      string `json:"type"`
			Name      string `json:"name"`
			ItemCount int    `json:"itemCount"`
		}
		briefs := make([]templateBrief, len(templates))
		totalItems := 0
		for i, t := range templates {
			briefs[i] = templateBrief{Type: t.Type, Name: t.Name, ItemCount: len(t.Items)}
			totalItems += len(t.Items)
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    templates,
			"summary": gin.H{
				"totalTemplates": len(templates),
				"totalItems":     totalItems,
				"templates":      briefs,
			},
		})
	}
}

func handleCreateTemplate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Type        string `json:"type"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.Validationf("invalid request body: %v", err))
			return
		}

		tmpl, err := checklist.CreateTemplate(db, checklist.CreateTemplateOpts{
			Name:        req.Name,
			Description: req.Description,
			Type:        req.Type,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    tmpl,
			"message": "Template created successfully",
		})
	}
}
