package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"touringplaces/handlers"
	"touringplaces/services/stays"
	"touringplaces/services/tours"
)

func testEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	stayHandler := handlers.NewStayHandler(&stays.DefaultStayService{Currency: "ZAR"})
	tourHandler := handlers.NewTourHandler(&tours.DefaultTourService{})
	RegisterRoutes(r, &handlers.HandlerBundle{
		SearchFlights: func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"success": true}) },
		SearchStays:   stayHandler.SearchStays,
		SearchTours:   tourHandler.SearchTours,
		SendEmail:     func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"success": true}) },
		SubmitEnquiry: func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"success": true}) },
	})
	return r
}

func TestPreflightGetsCORSHeadersAndNoBody(t *testing.T) {
	r := testEngine()

	req := httptest.NewRequest(http.MethodOptions, "/api/search/tours", nil)
	req.Header.Set("Origin", "https://touringplaces.co.za")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Empty(t, w.Body.String())
}

func TestHealthRoute(t *testing.T) {
	r := testEngine()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestSearchRoutesAreRegistered(t *testing.T) {
	r := testEngine()

	for _, path := range []string{"/api/search/flights", "/api/search/stays", "/api/search/tours"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		// Search endpoints are POST-only.
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}
