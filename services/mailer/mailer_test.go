package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"touringplaces/models"
)

func TestSendPostsToProvider(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"id": "msg-42"}`))
	}))
	defer srv.Close()

	m := &ResendMailer{APIKey: "test-key", From: "Touring Places <bookings@touringplaces.co.za>", Endpoint: srv.URL}
	receipt, err := m.Send(context.Background(), models.SendEmailRequest{
		To:      "guest@example.com",
		Subject: "Booking confirmed",
		HTML:    "<p>See you soon</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-42", receipt.ID)

	assert.Equal(t, "Touring Places <bookings@touringplaces.co.za>", received["from"])
	assert.Equal(t, []interface{}{"guest@example.com"}, received["to"])
	assert.Equal(t, "Booking confirmed", received["subject"])
}

func TestSendMissingCredential(t *testing.T) {
	m := &ResendMailer{}
	_, err := m.Send(context.Background(), models.SendEmailRequest{To: "a@b.c", Subject: "s", HTML: "h"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestSendProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	m := &ResendMailer{APIKey: "test-key", Endpoint: srv.URL}
	_, err := m.Send(context.Background(), models.SendEmailRequest{To: "a@b.c", Subject: "s", HTML: "h"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}
