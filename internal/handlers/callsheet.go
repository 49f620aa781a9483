package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/brickprod/callsheet-api/internal/models"
	"github.com/brickprod/callsheet-api/internal/storage"
)

type CallSheetHandler struct {
	store *storage.Storage
	log   zerolog.Logger
}

func NewCallSheetHandler(store *storage.Storage, log zerolog.Logger) *CallSheetHandler {
	return &CallSheetHandler{store: store, log: log}
}

// ListCallSheets returns every call sheet.
func (h *CallSheetHandler) ListCallSheets(c *gin.Context) {
	sheets, err := h.store.CallSheets.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch call sheets")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch call sheets"})
		return
	}
	c.JSON(http.StatusOK, sheets)
}

func (h *CallSheetHandler) GetCallSheet(c *gin.Context) {
	sheet, err := h.store.CallSheets.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch call sheet")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch call sheet"})
		return
	}
	if sheet == nil {
		notFound(c, "Call sheet")
		return
	}
	c.JSON(http.StatusOK, sheet)
}

func (h *CallSheetHandler) CreateCallSheet(c *gin.Context) {
	var in models.InsertCallSheet
	if err := c.ShouldBindJSON(&in); err != nil {
		validationError(c, err)
		return
	}

	sheet, err := h.store.CallSheets.Create(c.Request.Context(), in)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to create call sheet")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create call sheet"})
		return
	}
	c.JSON(http.StatusCreated, sheet)
}

func (h *CallSheetHandler) UpdateCallSheet(c *gin.Context) {
	var patch models.CallSheetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		validationError(c, err)
		return
	}

	sheet, err := h.store.CallSheets.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to update call sheet")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update call sheet"})
		return
	}
	if sheet == nil {
		notFound(c, "Call sheet")
		return
	}
	c.JSON(http.StatusOK, sheet)
}

func (h *CallSheetHandler) DeleteCallSheet(c *gin.Context) {
	ok, err := h.store.CallSheets.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to delete call sheet")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete call sheet"})
		return
	}
	if !ok {
		notFound(c, "Call sheet")
		return
	}
	c.Status(http.StatusNoContent)
}
