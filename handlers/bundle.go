package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all endpoint handlers for route registration.
type HandlerBundle struct {
	// Search endpoints.
	SearchFlights gin.HandlerFunc
	SearchStays   gin.HandlerFunc
	SearchTours   gin.HandlerFunc

	// Email endpoints.
	SendEmail     gin.HandlerFunc
	SubmitEnquiry gin.HandlerFunc
}
