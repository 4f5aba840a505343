package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"touringplaces/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// MailerService defines the transactional email boundary. Callers composing
// email with a primary action (e.g. recording an enquiry) must treat a send
// failure as non-fatal to that action.
type MailerService interface {
	Send(ctx context.Context, req models.SendEmailRequest) (*models.EmailReceipt, error)
}

// ResendMailer delivers email through the Resend HTTP API.
type ResendMailer struct {
	APIKey   string
	From     string
	Endpoint string
	Client   *http.Client
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}

// Send posts one message to the email provider and returns its receipt.
func (m *ResendMailer) Send(ctx context.Context, req models.SendEmailRequest) (*models.EmailReceipt, error) {
	if m.APIKey == "" {
		return nil, fmt.Errorf("email service is not configured")
	}

	body, err := json.Marshal(resendPayload{
		From:    m.From,
		To:      []string{req.To},
		Subject: req.Subject,
		HTML:    req.HTML,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode email payload: %w", err)
	}

	endpoint := m.Endpoint
	if endpoint == "" {
		endpoint = resendEndpoint
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build email request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+m.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := m.client().Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("email provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	var receipt resendResponse
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, fmt.Errorf("failed to decode email provider response: %w", err)
	}
	return &models.EmailReceipt{ID: receipt.ID}, nil
}

func (m *ResendMailer) client() *http.Client {
	if m.Client != nil {
		return m.Client
	}
	return &http.Client{Timeout: 10 * time.Second}
}
