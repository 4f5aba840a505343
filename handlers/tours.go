package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"touringplaces/models"
	"touringplaces/services/tours"
	"touringplaces/utils"
)

// TourHandler exposes tour search over HTTP.
type TourHandler struct {
	Service tours.TourService
}

func NewTourHandler(svc tours.TourService) *TourHandler {
	return &TourHandler{Service: svc}
}

// SearchTours handles POST /api/search/tours. All request fields are
// optional: an empty query serves the featured blend.
func (h *TourHandler) SearchTours(c *gin.Context) {
	var req models.TourSearchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid tour search request.")
			return
		}
	}

	result, err := h.Service.Search(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Tour search failed. Please try again.")
		return
	}

	c.JSON(http.StatusOK, models.TourSearchResponse{
		Success:      true,
		Tours:        result.Tours,
		TotalResults: result.TotalResults,
	})
}
