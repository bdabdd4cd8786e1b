package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler holds shared dependencies (metrics) for all route handlers.
type Handler struct {
	metrics *apiMetrics
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Routes ─────────────────────────────────────────────────────────── */

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.GET("/health", h.healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST("/calculate_bee/", h.calculateBEEHandler)
}

// healthCheck reports that the application is up.
// GET /health.
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Application is running."})
}

// calculateBEEHandler computes BEE and TDEE from a form-encoded body.
// POST /calculate_bee/. Field-level validation failures (missing fields,
// age outside 1-150, non-positive weight/height) return 422; an unknown
// unit_system or biological_sex returns 400 with the list of accepted values.
func (h *Handler) calculateBEEHandler(c *gin.Context) {
	start := time.Now()

	var in beeFormInput
	if err := c.ShouldBind(&in); err != nil {
		h.metrics.RequestErrors.Inc()
		apiError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	out, err := calculateBEE(in)
	if err != nil {
		h.metrics.RequestErrors.Inc()
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	h.metrics.CalculationsTotal.WithLabelValues(strings.ToLower(in.BiologicalSex)).Inc()
	h.metrics.CalculationDuration.Observe(time.Since(start).Seconds())

	c.JSON(http.StatusOK, out)
}
