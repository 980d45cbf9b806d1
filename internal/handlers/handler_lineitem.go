package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitit-app/splitit_backend/internal/dto"
	"github.com/splitit-app/splitit_backend/internal/middleware"
)

// addLineItem godoc
// @Summary Add a line item to a check
// @Description Appends a purchased item; without a locationId the service resolves the sole or default location
// @Tags line-items
// @Accept json
// @Produce json
// @Param checkID path string true "Check ID"
// @Param lineItem body dto.CreateLineItemRequest true "Line item details"
// @Success 201 {object} dto.LineItemResponse
// @Failure 400 {object} map[string]string "Invalid input or ambiguous location"
// @Failure 404 {object} map[string]string "Check or location not found"
// @Failure 500 {object} map[string]string "Failed to add line item"
// @Router /checks/{checkID}/line-items [post]
func (h *checkHandler) addLineItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddLineItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	lineItem, err := h.checkService.AddLineItem(c.Request.Context(), c.Param("checkID"), req)
	if err != nil {
		respondWithError(c, err, "add line item")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLineItemResponse(lineItem))
}

// updateLineItem godoc
// @Summary Replace a line item
// @Description Strict replace: name and locationId are required, owners and amount are cleared when omitted
// @Tags line-items
// @Accept json
// @Produce json
// @Param checkID path string true "Check ID"
// @Param lineItemID path string true "Line item ID"
// @Param lineItem body dto.UpdateLineItemRequest true "Replacement line item"
// @Success 200 {object} dto.LineItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Check, location, or line item not found"
// @Failure 500 {object} map[string]string "Failed to update line item"
// @Router /checks/{checkID}/line-items/{lineItemID} [put]
func (h *checkHandler) updateLineItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateLineItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	lineItem, err := h.checkService.UpdateLineItem(c.Request.Context(), c.Param("checkID"), c.Param("lineItemID"), req)
	if err != nil {
		respondWithError(c, err, "update line item")
		return
	}
	c.JSON(http.StatusOK, dto.ToLineItemResponse(lineItem))
}

// splitLineItem godoc
// @Summary Split a line item
// @Description Divides the item's amount over splitCount items, cloning the original for each extra share
// @Tags line-items
// @Accept json
// @Produce json
// @Param checkID path string true "Check ID"
// @Param lineItemID path string true "Line item ID"
// @Param split body dto.SplitLineItemRequest true "Split count"
// @Success 200 {array} dto.LineItemResponse
// @Failure 400 {object} map[string]string "Invalid split count"
// @Failure 404 {object} map[string]string "Check or line item not found"
// @Failure 500 {object} map[string]string "Failed to split line item"
// @Router /checks/{checkID}/line-items/{lineItemID}/split [post]
func (h *checkHandler) splitLineItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SplitLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SplitLineItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	lineItems, err := h.checkService.SplitLineItem(c.Request.Context(), c.Param("checkID"), c.Param("lineItemID"), req)
	if err != nil {
		respondWithError(c, err, "split line item")
		return
	}
	c.JSON(http.StatusOK, dto.ToLineItemResponses(lineItems))
}

// deleteLineItem godoc
// @Summary Delete a line item
// @Description Removes the line item and releases its location reference
// @Tags line-items
// @Produce json
// @Param checkID path string true "Check ID"
// @Param lineItemID path string true "Line item ID"
// @Success 200 {object} dto.LineItemResponse
// @Failure 404 {object} map[string]string "Check or line item not found"
// @Failure 500 {object} map[string]string "Failed to delete line item"
// @Router /checks/{checkID}/line-items/{lineItemID} [delete]
func (h *checkHandler) deleteLineItem(c *gin.Context) {
	lineItem, err := h.checkService.DeleteLineItem(c.Request.Context(), c.Param("checkID"), c.Param("lineItemID"))
	if err != nil {
		respondWithError(c, err, "delete line item")
		return
	}
	c.JSON(http.StatusOK, dto.ToLineItemResponse(lineItem))
}
