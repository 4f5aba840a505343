package handlers

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"touringplaces/models"
	"touringplaces/services/mailer"
	"touringplaces/utils"
)

// EmailHandler exposes transactional email and contact enquiries over HTTP.
type EmailHandler struct {
	Mailer       mailer.MailerService
	EnquiryInbox string
}

func NewEmailHandler(svc mailer.MailerService, enquiryInbox string) *EmailHandler {
	return &EmailHandler{Mailer: svc, EnquiryInbox: enquiryInbox}
}

// SendEmail handles POST /api/email/send. A failed send here is the whole
// operation, so it is surfaced to the caller.
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var req models.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid email request.")
		return
	}

	receipt, err := h.Mailer.Send(c.Request.Context(), req)
	if err != nil {
		utils.GetLogger().Error("Transactional email send failed",
			zap.String("to", req.To), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send email. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": receipt.ID})
}

// SubmitEnquiry handles POST /api/enquiries. The enquiry is forwarded to the
// site inbox; the email send is best-effort and a failure never fails the
// enquiry itself.
func (h *EmailHandler) SubmitEnquiry(c *gin.Context) {
	var enquiry models.ContactEnquiry
	if err := c.ShouldBindJSON(&enquiry); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid enquiry.")
		return
	}

	subject := enquiry.Subject
	if subject == "" {
		subject = "New website enquiry"
	}

	_, err := h.Mailer.Send(c.Request.Context(), models.SendEmailRequest{
		To:      h.EnquiryInbox,
		Subject: fmt.Sprintf("[Enquiry] %s", subject),
		HTML:    renderEnquiry(enquiry),
	})
	if err != nil {
		utils.GetLogger().Warn("Enquiry email send failed, enquiry still accepted",
			zap.String("from", enquiry.Email), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func renderEnquiry(e models.ContactEnquiry) string {
	return fmt.Sprintf(
		"<h2>Website enquiry</h2><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p>%s</p>",
		html.EscapeString(e.Name),
		html.EscapeString(e.Email),
		html.EscapeString(e.Message),
	)
}
