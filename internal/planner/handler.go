package planner

import (
	"errors"
	"fmt"
	"net/http"

	"flightplanner/internal/traffic"

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
	router.POST("/v1/planner/calculate", h.CalculateHandler)
	router.POST("/v1/traffic/estimate", h.TrafficEstimateHandler)
	router.POST("/v1/traffic/conditions", h.TrafficConditionsHandler)
}

func (h *Handler) CalculateHandler(c *gin.Context) {
	var req CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  ErrorCodeValidation,
		})
		return
	}

	result, err := h.service.Calculate(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type trafficRequest struct {
	Origin      traffic.Location `json:"origin"`
	Destination traffic.Location `json:"destination"`
}

func (h *Handler) TrafficEstimateHandler(c *gin.Context) {
	req, ok := bindTrafficRequest(c)
	if !ok {
		return
	}

	estimate, err := h.service.estimator.Estimate(c.Request.Context(), req.Origin, req.Destination)
	if err != nil {
		sendError(c, NewTrafficUnavailableError(err))
		return
	}

	c.JSON(http.StatusOK, estimate)
}

func (h *Handler) TrafficConditionsHandler(c *gin.Context) {
	req, ok := bindTrafficRequest(c)
	if !ok {
		return
	}

	conditions, err := h.service.estimator.Conditions(c.Request.Context(), req.Origin, req.Destination)
	if err != nil {
		sendError(c, NewTrafficUnavailableError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"conditions": conditions})
}

func bindTrafficRequest(c *gin.Context) (trafficRequest, bool) {
	var req trafficRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  ErrorCodeValidation,
		})
		return req, false
	}
	if req.Origin.IsZero() || req.Destination.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Origin and destination are required",
			"code":  ErrorCodeValidation,
		})
		return req, false
	}
	return req, true
}

func sendError(c *gin.Context, err error) {
	var appErr *AppError

	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	// Default to 500 for unknown errors
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal Server Error",
		"code":  ErrorCodeInternalFailure,
	})
}
