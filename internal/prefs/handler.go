package prefs

import (
	"errors"
	"fmt"
	"net/http"

	"flightplanner/internal/planner"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{
		service: s,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/v1/preferences/:user_id", h.GetPreferencesHandler)
	router.PUT("/v1/preferences/:user_id", h.PutPreferencesHandler)
}

func (h *Handler) GetPreferencesHandler(c *gin.Context) {
	userID := c.Param("user_id")

	prefs, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Preferences not found",
				"code":  planner.ErrorCodeNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch preferences",
			"code":  planner.ErrorCodeInternalFailure,
		})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (h *Handler) PutPreferencesHandler(c *gin.Context) {
	userID := c.Param("user_id")

	var prefs planner.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  planner.ErrorCodeValidation,
		})
		return
	}

	if err := h.service.Put(c.Request.Context(), userID, prefs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to store preferences",
			"code":  planner.ErrorCodeInternalFailure,
		})
		return
	}

	c.JSON(http.StatusOK, prefs)
}
