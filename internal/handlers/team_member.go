package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/brickprod/callsheet-api/internal/models"
	"github.com/brickprod/callsheet-api/internal/storage"
)

type TeamMemberHandler struct {
	store *storage.Storage
	log   zerolog.Logger
}

func NewTeamMemberHandler(store *storage.Storage, log zerolog.Logger) *TeamMemberHandler {
	return &TeamMemberHandler{store: store, log: log}
}

func (h *TeamMemberHandler) ListTeamMembers(c *gin.Context) {
	members, err := h.store.TeamMembers.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch team members")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team members"})
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *TeamMemberHandler) GetTeamMember(c *gin.Context) {
	member, err := h.store.TeamMembers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch team member")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team member"})
		return
	}
	if member == nil {
		notFound(c, "Team member")
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *TeamMemberHandler) CreateTeamMember(c *gin.Context) {
	var in models.InsertTeamMember
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}

	member, err := h.store.TeamMembers.Create(c.Request.Context(), in)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to create team member")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team member"})
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *TeamMemberHandler) UpdateTeamMember(c *gin.Context) {
	var patch models.TeamMemberPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		validationError(c, err)
		return
	}

	member, err := h.store.TeamMembers.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to update team member")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team member"})
		return
	}
	if member == nil {
		notFound(c, "Team member")
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *TeamMemberHandler) DeleteTeamMember(c *gin.Context) {
	ok, err := h.store.TeamMembers.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to delete team member")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team member"})
		return
	}
	if !ok {
		notFound(c, "Team member")
		return
	}
	c.Status(http.StatusNoContent)
}
