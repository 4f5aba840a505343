package models

// SendEmailRequest is the transactional email input.
type SendEmailRequest struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	HTML    string `json:"html" binding:"required"`
}

// EmailReceipt is returned by the email provider after a successful send.
type EmailReceipt struct {
	ID string `json:"id"`
}

// ContactEnquiry is a visitor message forwarded to the site inbox.
type ContactEnquiry struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}
