package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitit-app/splitit_backend/internal/dto"
	"github.com/splitit-app/splitit_backend/internal/middleware"
)

// addLocation godoc
// @Summary Add a location to a check
// @Description Appends a new location with optional flat tax and tip pools
// @Tags locations
// @Accept json
// @Produce json
// @Param checkID path string true "Check ID"
// @Param location body dto.CreateLocationRequest true "Location details"
// @Success 201 {object} dto.LocationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Check not found"
// @Failure 409 {object} map[string]string "Location name already exists"
// @Failure 500 {object} map[string]string "Failed to add location"
// @Router /checks/{checkID}/locations [post]
func (h *checkHandler) addLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddLocation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	location, err := h.checkService.AddLocation(c.Request.Context(), c.Param("checkID"), req)
	if err != nil {
		respondWithError(c, err, "add location")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLocationResponse(location))
}

// updateLocation godoc
// @Summary Update a location
// @Description Overwrites the location's name; tax and tip are replaced wholesale, omitted values are cleared
// @Tags locations
// @Accept json
// @Produce json
// @Param checkID path string true "Check ID"
// @Param locationID path string true "Location ID"
// @Param location body dto.UpdateLocationRequest true "Fields to update"
// @Success 200 {object} dto.LocationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Check or location not found"
// @Failure 409 {object} map[string]string "Location name already exists"
// @Failure 500 {object} map[string]string "Failed to update location"
// @Router /checks/{checkID}/locations/{locationID} [put]
func (h *checkHandler) updateLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateLocation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	location, err := h.checkService.UpdateLocation(c.Request.Context(), c.Param("checkID"), c.Param("locationID"), req)
	if err != nil {
		respondWithError(c, err, "update location")
		return
	}
	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

// deleteLocation godoc
// @Summary Delete a location
// @Description Removes a location that has no line items; a check always keeps at least one location
// @Tags locations
// @Produce json
// @Param checkID path string true "Check ID"
// @Param locationID path string true "Location ID"
// @Success 200 {object} dto.LocationResponse
// @Failure 400 {object} map[string]string "Location still referenced or is the last one"
// @Failure 404 {object} map[string]string "Check or location not found"
// @Failure 500 {object} map[string]string "Failed to delete location"
// @Router /checks/{checkID}/locations/{locationID} [delete]
func (h *checkHandler) deleteLocation(c *gin.Context) {
	location, err := h.checkService.DeleteLocation(c.Request.Context(), c.Param("checkID"), c.Param("locationID"))
	if err != nil {
		respondWithError(c, err, "delete location")
		return
	}
	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}
