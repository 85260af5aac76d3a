package handlers

import (
	"net/http"

	"carboncalc/internal/models"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errCalculate       = "failed to calculate footprint"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// bindFootprintInput binds and validates the calculation payload. Binding
// tags on the models enforce the caller-side contract (non-negative numbers,
// percentages in range) so the unclamped core never sees out-of-range values
// from HTTP callers.
func (h *Handler) bindFootprintInput(c *gin.Context) (models.FootprintInput, bool) {
	var in models.FootprintInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return models.FootprintInput{}, false
	}
	return in, true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Calculate carbon footprint
// @Description  Computes the annual footprint from transport, energy, and lifestyle inputs and stores the result in history.
// @Tags         footprint
// @Accept       json
// @Produce      json
// @Param        body  body   models.FootprintInput  true  "Calculation input"
// @Success      200   {object}  models.FootprintResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/footprint/calculate [post]
// @Security     BearerAuth
func (h *Handler) calculateFootprint(c *gin.Context) {
	in, ok := h.bindFootprintInput(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	result, err := h.services.Footprint.Calculate(ctx, in)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCalculate, "footprint_calculate_failed", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary      Get recommendations
// @Description  Evaluates the advisory rules against the supplied input. Nothing is stored.
// @Tags         footprint
// @Accept       json
// @Produce      json
// @Param        body  body   models.FootprintInput  true  "Calculation input"
// @Success      200   {object}  map[string]interface{}  "count, categories"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/footprint/recommendations [post]
// @Security     BearerAuth
func (h *Handler) recommendActions(c *gin.Context) {
	in, ok := h.bindFootprintInput(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	categories, err := h.services.Footprint.Recommend(ctx, in)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to build recommendations", "footprint_recommend_failed", err)
		return
	}
	if categories == nil {
		categories = []models.RecommendationCategory{}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":      len(categories),
		"categories": categories,
	})
}
