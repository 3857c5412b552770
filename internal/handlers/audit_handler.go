package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rafflewise/draw-engine/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditHandler handles audit trail HTTP requests
type AuditHandler struct {
	auditService services.AuditService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService services.AuditService) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// GetAuditRecords handles GET /audit, filtered by draw when drawId is given
func (h *AuditHandler) GetAuditRecords(c *gin.Context) {
	if drawIDStr := c.Query("drawId"); drawIDStr != "" {
		drawID, err := primitive.ObjectIDFromHex(drawIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draw ID format"})
			return
		}
		records, err := h.auditService.GetByDrawID(c.Request.Context(), drawID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve audit records: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit number"})
		return
	}

	records, err := h.auditService.GetRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve audit records: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}
