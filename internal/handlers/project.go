package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/brickprod/callsheet-api/internal/models"
	"github.com/brickprod/callsheet-api/internal/storage"
)

type ProjectHandler struct {
	store *storage.Storage
	log   zerolog.Logger
}

func NewProjectHandler(store *storage.Storage, log zerolog.Logger) *ProjectHandler {
	return &ProjectHandler{store: store, log: log}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.store.Projects.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch projects")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.store.Projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}
	if project == nil {
		notFound(c, "Project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var in models.InsertProject
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}

	project, err := h.store.Projects.Create(c.Request.Context(), in)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to create project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var patch models.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		validationError(c, err)
		return
	}

	project, err := h.store.Projects.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to update project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}
	if project == nil {
		notFound(c, "Project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	ok, err := h.store.Projects.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to delete project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	if !ok {
		notFound(c, "Project")
		return
	}
	c.Status(http.StatusNoContent)
}
