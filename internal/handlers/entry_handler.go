package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rafflewise/draw-engine/internal/models"
	"github.com/rafflewise/draw-engine/internal/services"
	"github.com/rafflewise/draw-engine/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EntryHandler handles participant entry HTTP requests
type EntryHandler struct {
	entryService services.EntryService
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(entryService services.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
	}
}

// CreateEntry handles POST /entries
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req models.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTickets) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, services.ErrDuplicateCode) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetEntries handles GET /entries
func (h *EntryHandler) GetEntries(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page number"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit number"})
		return
	}

	entries, err := h.entryService.GetEntries(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entries: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetEntryCount handles GET /entries/count
func (h *EntryHandler) GetEntryCount(c *gin.Context) {
	count, err := h.entryService.CountEntries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count entries: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetEntryByCode handles GET /entries/code/:code
func (h *EntryHandler) GetEntryByCode(c *gin.Context) {
	entry, err := h.entryService.GetEntryByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /entries/:id
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	entryID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID format"})
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted successfully"})
}

// ImportEntries handles POST /entries/import with a multipart CSV file
func (h *EntryHandler) ImportEntries(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing CSV file in form field 'file'"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open uploaded file: " + err.Error()})
		return
	}
	defer file.Close()

	result, err := utils.ParseEntriesCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse CSV: " + err.Error()})
		return
	}

	created, updated, err := h.entryService.ImportEntries(c.Request.Context(), result.Entries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import entries: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalRows": result.TotalRows,
		"created":   created,
		"updated":   updated,
		"rejected":  len(result.Errors),
		"errors":    result.Errors,
	})
}

// AddExclusion handles POST /exclusions
func (h *EntryHandler) AddExclusion(c *gin.Context) {
	var req models.CreateExclusionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.entryService.AddExclusion(c.Request.Context(), &req, actorFromContext(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add exclusion: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Exclusion added successfully"})
}

// RemoveExclusion handles DELETE /exclusions/:code
func (h *EntryHandler) RemoveExclusion(c *gin.Context) {
	if err := h.entryService.RemoveExclusion(c.Request.Context(), c.Param("code"), actorFromContext(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove exclusion: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exclusion removed successfully"})
}

// GetExclusions handles GET /exclusions
func (h *EntryHandler) GetExclusions(c *gin.Context) {
	exclusions, err := h.entryService.GetExclusions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exclusions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, exclusions)
}
