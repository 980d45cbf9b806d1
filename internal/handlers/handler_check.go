package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitit-app/splitit_backend/internal/apperrors"
	portssvc "github.com/splitit-app/splitit_backend/internal/core/ports/services"
	"github.com/splitit-app/splitit_backend/internal/dto"
	"github.com/splitit-app/splitit_backend/internal/middleware"
)

// checkHandler handles HTTP requests related to checks.
type checkHandler struct {
	checkService portssvc.CheckSvcFacade
}

func newCheckHandler(cs portssvc.CheckSvcFacade) *checkHandler {
	return &checkHandler{checkService: cs}
}

// registerCheckRoutes registers routes for checks, their locations, and
// their line items.
func registerCheckRoutes(rg *gin.RouterGroup, checkService portssvc.CheckSvcFacade) {
	h := newCheckHandler(checkService)

	checks := rg.Group("/checks")
	{
		checks.POST("", h.createCheck)
		checks.GET("", h.listChecks)
		checks.GET("/:checkID", h.getCheck)
		checks.PUT("/:checkID", h.updateCheck)
		checks.DELETE("/:checkID", h.deleteCheck)
		checks.GET("/:checkID/by-owner", h.getCheckByOwner)

		locations := checks.Group("/:checkID/locations")
		locations.POST("", h.addLocation)
		locations.PUT("/:locationID", h.updateLocation)
		locations.DELETE("/:locationID", h.deleteLocation)

		lineItems := checks.Group("/:checkID/line-items")
		lineItems.POST("", h.addLineItem)
		lineItems.PUT("/:lineItemID", h.updateLineItem)
		lineItems.DELETE("/:lineItemID", h.deleteLineItem)
		lineItems.POST("/:lineItemID/split", h.splitLineItem)
	}
}

// respondWithError maps the core's error kinds onto HTTP status codes.
func respondWithError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflict", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Not found", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("Internal error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// createCheck godoc
// @Summary Create a new check
// @Description Creates a new check seeded with its default location
// @Tags checks
// @Accept json
// @Produce json
// @Param check body dto.CreateCheckRequest true "Check details"
// @Success 201 {object} dto.CheckResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create check"
// @Router /checks [post]
func (h *checkHandler) createCheck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCheck", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	check, err := h.checkService.CreateCheck(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "create check")
		return
	}

	logger.Info("Check created successfully", slog.String("check_id", check.CheckID))
	c.JSON(http.StatusCreated, dto.ToCheckResponse(check))
}

// getCheck godoc
// @Summary Get a check by ID
// @Description Retrieves a full check aggregate including locations and line items
// @Tags checks
// @Produce json
// @Param checkID path string true "Check ID"
// @Success 200 {object} dto.CheckResponse
// @Failure 404 {object} map[string]string "Check not found"
// @Failure 500 {object} map[string]string "Failed to retrieve check"
// @Router /checks/{checkID} [get]
func (h *checkHandler) getCheck(c *gin.Context) {
	check, err := h.checkService.GetCheckByID(c.Request.Context(), c.Param("checkID"))
	if err != nil {
		respondWithError(c, err, "retrieve check")
		return
	}
	c.JSON(http.StatusOK, dto.ToCheckResponse(check))
}

// listChecks godoc
// @Summary List checks
// @Description Pages through check summaries in ascending ID order using an opaque marker
// @Tags checks
// @Produce json
// @Param limit query int false "Maximum summaries to return" default(25)
// @Param marker query string false "Marker returned by the previous page"
// @Success 200 {object} dto.ListChecksResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list checks"
// @Router /checks [get]
func (h *checkHandler) listChecks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListChecksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListChecks", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summaries, marker, err := h.checkService.ListChecks(c.Request.Context(), params.Limit, params.Marker)
	if err != nil {
		respondWithError(c, err, "list checks")
		return
	}

	c.JSON(http.StatusOK, dto.ToListChecksResponse(summaries, marker))
}

// updateCheck godoc
// @Summary Update a check
// @Description Overwrites the check's date and/or description
// @Tags checks
// @Accept json
// @Produce json
// @Param checkID path string true "Check ID"
// @Param check body dto.UpdateCheckRequest true "Fields to update"
// @Success 200 {object} dto.CheckResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Check not found"
// @Failure 500 {object} map[string]string "Failed to update check"
// @Router /checks/{checkID} [put]
func (h *checkHandler) updateCheck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCheck", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	check, err := h.checkService.UpdateCheck(c.Request.Context(), c.Param("checkID"), req)
	if err != nil {
		respondWithError(c, err, "update check")
		return
	}
	c.JSON(http.StatusOK, dto.ToCheckResponse(check))
}

// deleteCheck godoc
// @Summary Delete a check
// @Description Removes the check and everything it owns
// @Tags checks
// @Produce json
// @Param checkID path string true "Check ID"
// @Success 200 {object} dto.CheckResponse
// @Failure 404 {object} map[string]string "Check not found"
// @Failure 500 {object} map[string]string "Failed to delete check"
// @Router /checks/{checkID} [delete]
func (h *checkHandler) deleteCheck(c *gin.Context) {
	check, err := h.checkService.DeleteCheck(c.Request.Context(), c.Param("checkID"))
	if err != nil {
		respondWithError(c, err, "delete check")
		return
	}
	c.JSON(http.StatusOK, dto.ToCheckResponse(check))
}

// getCheckByOwner godoc
// @Summary Group a check's totals by owner
// @Description Computes each owner's share in cents, with tax and tip pools distributed proportionally per location
// @Tags checks
// @Produce json
// @Param checkID path string true "Check ID"
// @Success 200 {object} dto.ByOwnerResponse
// @Failure 400 {object} map[string]string "Check cannot be allocated"
// @Failure 404 {object} map[string]string "Check not found"
// @Failure 500 {object} map[string]string "Failed to group check"
// @Router /checks/{checkID}/by-owner [get]
func (h *checkHandler) getCheckByOwner(c *gin.Context) {
	totals, err := h.checkService.GroupCheckByOwner(c.Request.Context(), c.Param("checkID"))
	if err != nil {
		respondWithError(c, err, "group check by owner")
		return
	}
	c.JSON(http.StatusOK, dto.ByOwnerResponse{ByOwner: totals})
}
