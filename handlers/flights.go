package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"touringplaces/models"
	"touringplaces/services/flights"
	"touringplaces/utils"
)

// FlightHandler exposes flight search over HTTP.
type FlightHandler struct {
	Service flights.FlightService
}

func NewFlightHandler(svc flights.FlightService) *FlightHandler {
	return &FlightHandler{Service: svc}
}

// SearchFlights handles POST /api/search/flights.
func (h *FlightHandler) SearchFlights(c *gin.Context) {
	var req models.FlightSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid flight search request.")
		return
	}

	if err := validateAirportCode("flyFrom", req.FlyFrom); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateAirportCode("flyTo", req.FlyTo); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateSlashDate("dateFrom", req.DateFrom); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.DateTo != "" {
		if err := validateSlashDate("dateTo", req.DateTo); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	result, err := h.Service.Search(c.Request.Context(), req)
	if err != nil {
		var searchErr *flights.SearchError
		if errors.As(err, &searchErr) {
			utils.JSONError(c, http.StatusInternalServerError, searchErr.Message)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Flight search failed. Please try again.")
		return
	}

	searchID := result.SearchID
	if searchID == "" {
		searchID = uuid.New().String()
	}
	flightsOut := result.Flights
	if flightsOut == nil {
		flightsOut = []models.FlightResult{}
	}

	c.JSON(http.StatusOK, models.FlightSearchResponse{
		Success:  true,
		Flights:  flightsOut,
		Currency: result.Currency,
		SearchID: searchID,
	})
}
