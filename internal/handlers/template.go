package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/brickprod/callsheet-api/internal/models"
	"github.com/brickprod/callsheet-api/internal/storage"
)

type TemplateHandler struct {
	store *storage.Storage
	log   zerolog.Logger
}

func NewTemplateHandler(store *storage.Storage, log zerolog.Logger) *TemplateHandler {
	return &TemplateHandler{store: store, log: log}
}

// ListTemplates returns all templates, optionally filtered by ?category=X.
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	var (
		templates []models.Template
		err       error
	)
	if category := c.Query("category"); category != "" {
		templates, err = h.store.TemplatesByCategory(c.Request.Context(), category)
	} else {
		templates, err = h.store.Templates.List(c.Request.Context())
	}
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch templates")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch templates"})
		return
	}
	c.JSON(http.StatusOK, templates)
}

// ListDefaultTemplates returns the templates flagged as defaults.
func (h *TemplateHandler) ListDefaultTemplates(c *gin.Context) {
	templates, err := h.store.DefaultTemplates(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch default templates")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch default templates"})
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	template, err := h.store.Templates.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch template")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch template"})
		return
	}
	if template == nil {
		notFound(c, "Template")
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var in models.InsertTemplate
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}

	template, err := h.store.Templates.Create(c.Request.Context(), in)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to create template")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		return
	}
	c.JSON(http.StatusCreated, template)
}

func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	var patch models.TemplatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		validationError(c, err)
		return
	}

	template, err := h.store.Templates.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to update template")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update template"})
		return
	}
	if template == nil {
		notFound(c, "Template")
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	ok, err := h.store.Templates.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to delete template")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		return
	}
	if !ok {
		notFound(c, "Template")
		return
	}
	c.Status(http.StatusNoContent)
}
