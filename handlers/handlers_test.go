package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"touringplaces/models"
	"touringplaces/services/flights"
	"touringplaces/services/stays"
	"touringplaces/services/tours"
)

type stubFlightService struct {
	result *flights.FlightSearchResult
	err    error
}

func (s *stubFlightService) Search(_ context.Context, _ models.FlightSearchRequest) (*flights.FlightSearchResult, error) {
	return s.result, s.err
}

type stubMailer struct {
	sent []models.SendEmailRequest
	err  error
}

func (m *stubMailer) Send(_ context.Context, req models.SendEmailRequest) (*models.EmailReceipt, error) {
	m.sent = append(m.sent, req)
	if m.err != nil {
		return nil, m.err
	}
	return &models.EmailReceipt{ID: "stub-receipt"}, nil
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestSearchFlightsRejectsBadAirportCode(t *testing.T) {
	router := newTestRouter()
	h := NewFlightHandler(&stubFlightService{})
	router.POST("/api/search/flights", h.SearchFlights)

	w := postJSON(t, router, "/api/search/flights",
		`{"flyFrom": "CAPE", "flyTo": "LHR", "dateFrom": "15/09/2025"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "flyFrom")
}

func TestSearchFlightsRejectsBadDate(t *testing.T) {
	router := newTestRouter()
	h := NewFlightHandler(&stubFlightService{})
	router.POST("/api/search/flights", h.SearchFlights)

	w := postJSON(t, router, "/api/search/flights",
		`{"flyFrom": "CPT", "flyTo": "LHR", "dateFrom": "2025-09-15"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchFlightsEnvelope(t *testing.T) {
	router := newTestRouter()
	h := NewFlightHandler(&stubFlightService{result: &flights.FlightSearchResult{
		Flights: []models.FlightResult{
			{ID: "f1", Price: 900, Airlines: []string{"BA"}},
		},
		Currency: "ZAR",
		SearchID: "srch-1",
	}})
	router.POST("/api/search/flights", h.SearchFlights)

	w := postJSON(t, router, "/api/search/flights",
		`{"flyFrom": "CPT", "flyTo": "LHR", "dateFrom": "15/09/2025", "adults": 1}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ZAR", body["currency"])
	assert.Equal(t, "srch-1", body["searchId"])
	assert.Len(t, body["flights"], 1)
}

func TestSearchFlightsGeneratesSearchIDWhenProviderOmitsIt(t *testing.T) {
	router := newTestRouter()
	h := NewFlightHandler(&stubFlightService{result: &flights.FlightSearchResult{Currency: "ZAR"}})
	router.POST("/api/search/flights", h.SearchFlights)

	w := postJSON(t, router, "/api/search/flights",
		`{"flyFrom": "CPT", "flyTo": "LHR", "dateFrom": "15/09/2025"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["searchId"])
	// Empty result still serializes as an array, never null.
	assert.Equal(t, []interface{}{}, body["flights"])
}

func TestSearchFlightsSurfacesAdapterError(t *testing.T) {
	router := newTestRouter()
	h := NewFlightHandler(&stubFlightService{err: flights.NewConfigError("Flight search is not configured. Please contact support.")})
	router.POST("/api/search/flights", h.SearchFlights)

	w := postJSON(t, router, "/api/search/flights",
		`{"flyFrom": "CPT", "flyTo": "LHR", "dateFrom": "15/09/2025"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "not configured")
}

func TestSearchStaysRejectsBadDate(t *testing.T) {
	router := newTestRouter()
	h := NewStayHandler(&stays.DefaultStayService{Currency: "ZAR"})
	router.POST("/api/search/stays", h.SearchStays)

	w := postJSON(t, router, "/api/search/stays",
		`{"location": "Cape Town", "checkIn": "01/01/2025", "checkOut": "2025-01-03", "guests": 2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchStaysServesFallbackWithoutCredential(t *testing.T) {
	router := newTestRouter()
	h := NewStayHandler(&stays.DefaultStayService{Currency: "ZAR"})
	router.POST("/api/search/stays", h.SearchStays)

	w := postJSON(t, router, "/api/search/stays",
		`{"location": "Nowhere", "checkIn": "2025-01-01", "checkOut": "2025-01-03", "guests": 2}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "mock", body["source"])
	assert.Len(t, body["stays"], 5)
}

func TestSearchToursByCountry(t *testing.T) {
	router := newTestRouter()
	h := NewTourHandler(&tours.DefaultTourService{})
	router.POST("/api/search/tours", h.SearchTours)

	w := postJSON(t, router, "/api/search/tours", `{"destination": "Kenya"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(10), body["totalResults"])
	assert.Len(t, body["tours"], 10)
}

func TestSearchToursEmptyBodyServesFeatured(t *testing.T) {
	router := newTestRouter()
	h := NewTourHandler(&tours.DefaultTourService{})
	router.POST("/api/search/tours", h.SearchTours)

	w := postJSON(t, router, "/api/search/tours", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["tours"])
}

func TestSendEmailFailureIsSurfaced(t *testing.T) {
	router := newTestRouter()
	h := NewEmailHandler(&stubMailer{err: assert.AnError}, "enquiries@touringplaces.co.za")
	router.POST("/api/email/send", h.SendEmail)

	w := postJSON(t, router, "/api/email/send",
		`{"to": "guest@example.com", "subject": "Hello", "html": "<p>Hi</p>"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSubmitEnquirySucceedsEvenWhenEmailFails(t *testing.T) {
	router := newTestRouter()
	m := &stubMailer{err: assert.AnError}
	h := NewEmailHandler(m, "enquiries@touringplaces.co.za")
	router.POST("/api/enquiries", h.SubmitEnquiry)

	w := postJSON(t, router, "/api/enquiries",
		`{"name": "Thandi", "email": "thandi@example.com", "message": "Do you run tours in May?"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	// The send was attempted against the site inbox before failing.
	require.Len(t, m.sent, 1)
	assert.Equal(t, "enquiries@touringplaces.co.za", m.sent[0].To)
}

func TestSubmitEnquiryDeliversToInbox(t *testing.T) {
	router := newTestRouter()
	m := &stubMailer{}
	h := NewEmailHandler(m, "enquiries@touringplaces.co.za")
	router.POST("/api/enquiries", h.SubmitEnquiry)

	w := postJSON(t, router, "/api/enquiries",
		`{"name": "Sipho", "email": "sipho@example.com", "subject": "Group rates", "message": "We are 12 people."}`)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, m.sent, 1)
	assert.Equal(t, "[Enquiry] Group rates", m.sent[0].Subject)
	assert.Contains(t, m.sent[0].HTML, "Sipho")
}
