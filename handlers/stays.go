package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"touringplaces/models"
	"touringplaces/services/stays"
	"touringplaces/utils"
)

// StayHandler exposes stay search over HTTP.
type StayHandler struct {
	Service stays.StayService
}

func NewStayHandler(svc stays.StayService) *StayHandler {
	return &StayHandler{Service: svc}
}

// SearchStays handles POST /api/search/stays.
func (h *StayHandler) SearchStays(c *gin.Context) {
	var req models.StaySearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid stay search request.")
		return
	}

	if err := validateISODate("checkIn", req.CheckIn); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateISODate("checkOut", req.CheckOut); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.Service.Search(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Stay search failed. Please try again.")
		return
	}

	staysOut := result.Stays
	if staysOut == nil {
		staysOut = []models.StayResult{}
	}

	c.JSON(http.StatusOK, models.StaySearchResponse{
		Success: true,
		Stays:   staysOut,
		Source:  result.Source,
	})
}
