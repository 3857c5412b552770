package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafflewise/draw-engine/internal/models"
	"github.com/rafflewise/draw-engine/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DrawHandler handles draw-related HTTP requests
type DrawHandler struct {
	drawService services.DrawService
}

// NewDrawHandler creates a new DrawHandler
func NewDrawHandler(drawService services.DrawService) *DrawHandler {
	return &DrawHandler{
		drawService: drawService,
	}
}

// actorFromContext returns the authenticated admin's email for audit
// attribution, or "system" when the request carries no identity
func actorFromContext(c *gin.Context) string {
	if email := c.GetString("userEmail"); email != "" {
		return email
	}
	return "system"
}

// GetDraws handles GET /draws, optionally filtered by status or a date range
func (h *DrawHandler) GetDraws(c *gin.Context) {
	var startDate, endDate time.Time

	if startStr := c.Query("startDate"); startStr != "" {
		parsed, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate format, expected YYYY-MM-DD"})
			return
		}
		startDate = parsed
	}
	if endStr := c.Query("endDate"); endStr != "" {
		parsed, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate format, expected YYYY-MM-DD"})
			return
		}
		// Adjust endDate to include the entire day
		endDate = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page number"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit number"})
		return
	}

	status := models.DrawStatus(c.Query("status"))
	draws, err := h.drawService.GetDraws(c.Request.Context(), status, startDate, endDate, page, limit)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDrawRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve draws: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, draws)
}

// GetNextDraw handles GET /draws/next
func (h *DrawHandler) GetNextDraw(c *gin.Context) {
	draw, err := h.drawService.GetNextDraw(c.Request.Context(), time.Now())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No upcoming draw scheduled"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve next draw: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, draw)
}

// GetDrawByID handles GET /draws/:id
func (h *DrawHandler) GetDrawByID(c *gin.Context) {
	drawID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draw ID format"})
		return
	}

	draw, err := h.drawService.GetDrawByID(c.Request.Context(), drawID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Draw not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve draw: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, draw)
}

// ScheduleDraw handles POST /draws/schedule
func (h *DrawHandler) ScheduleDraw(c *gin.Context) {
	var req models.ScheduleDrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	draw, err := h.drawService.ScheduleDraw(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDrawRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule draw: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, draw)
}

// ExecuteDraw handles POST /draws/:id/execute
func (h *DrawHandler) ExecuteDraw(c *gin.Context) {
	drawID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draw ID format"})
		return
	}

	executedDraw, err := h.drawService.ExecuteDraw(c.Request.Context(), drawID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Draw not found"})
			return
		}
		if errors.Is(err, services.ErrDrawNotScheduled) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "draw_details": executedDraw})
			return
		}

		// Return the draw document alongside the error so callers can
		// inspect the execution log of the failed run
		errorMsg := "Failed to execute draw"
		if executedDraw != nil && executedDraw.Status == models.DrawStatusFailed {
			errorMsg = fmt.Sprintf("Draw execution failed: %s", executedDraw.ErrorMessage)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": errorMsg, "details": err.Error(), "draw_details": executedDraw})
		return
	}

	c.JSON(http.StatusOK, executedDraw)
}

// CancelDraw handles POST /draws/:id/cancel
func (h *DrawHandler) CancelDraw(c *gin.Context) {
	drawID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draw ID format"})
		return
	}

	draw, err := h.drawService.CancelDraw(c.Request.Context(), drawID, actorFromContext(c))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Draw not found"})
			return
		}
		if errors.Is(err, services.ErrDrawNotScheduled) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel draw: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Draw cancelled successfully", "draw": draw})
}

// GetDrawWinners handles GET /draws/:id/winners, optionally filtered by tier
func (h *DrawHandler) GetDrawWinners(c *gin.Context) {
	drawID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draw ID format"})
		return
	}

	winners, err := h.drawService.GetWinnersByDrawID(c.Request.Context(), drawID, c.Query("tier"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve winners: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, winners)
}

// GetWinnersByCode handles GET /winners/code/:code
func (h *DrawHandler) GetWinnersByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing participant code"})
		return
	}

	winners, err := h.drawService.GetWinsByCode(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve wins: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, winners)
}

// GetStats handles GET /stats
func (h *DrawHandler) GetStats(c *gin.Context) {
	stats, err := h.drawService.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// updateClaimRequest is the body for claim status updates
type updateClaimRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateClaimStatus handles PUT /winners/:id/claim
func (h *DrawHandler) UpdateClaimStatus(c *gin.Context) {
	winnerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid winner ID format"})
		return
	}

	var req updateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	winner, err := h.drawService.UpdateClaimStatus(c.Request.Context(), winnerID, req.Status, actorFromContext(c))
	if err != nil {
		if errors.Is(err, services.ErrInvalidClaimStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Winner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update claim status: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, winner)
}
