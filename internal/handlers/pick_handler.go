package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rafflewise/draw-engine/internal/services"
	"github.com/rafflewise/draw-engine/pkg/randpick"
)

// PickHandler handles one-off bounded random pick requests
type PickHandler struct {
	pickService services.PickService
}

// NewPickHandler creates a new PickHandler
func NewPickHandler(pickService services.PickService) *PickHandler {
	return &PickHandler{
		pickService: pickService,
	}
}

// QuickPick handles GET /picks/quick?bound=&count=&unique=
func (h *PickHandler) QuickPick(c *gin.Context) {
	boundStr := c.Query("bound")
	if boundStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: bound"})
		return
	}
	bound, err := strconv.Atoi(boundStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bound: must be an integer"})
		return
	}

	count, err := strconv.Atoi(c.DefaultQuery("count", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid count: must be an integer"})
		return
	}

	unique, err := strconv.ParseBool(c.DefaultQuery("unique", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unique: must be true or false"})
		return
	}

	draws, err := h.pickService.QuickPick(c.Request.Context(), bound, count, unique)
	if err != nil {
		if errors.Is(err, randpick.ErrInvalidBound) ||
			errors.Is(err, randpick.ErrInvalidCount) ||
			errors.Is(err, randpick.ErrCountExceedsBound) ||
			errors.Is(err, services.ErrBoundTooLarge) ||
			errors.Is(err, services.ErrCountTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to draw: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bound":  bound,
		"count":  count,
		"unique": unique,
		"draws":  draws,
	})
}
