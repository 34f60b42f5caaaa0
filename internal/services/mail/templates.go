package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/benvon/youthwell/internal/models"
)

var userConfirmationTmpl = template.Must(template.New("user").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Thank you for contacting YouthWell!</h2>
  <p>Dear {{.Name}},</p>
  <p>We have received your message and will get back to you as soon as possible.</p>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0; color: #666;">Your Ticket Details</h3>
    <p><strong>Ticket ID:</strong> <span style="color: #007bff; font-weight: bold;">{{.TicketID}}</span></p>
    <p><strong>Status:</strong> <span style="color: #28a745;">Received</span></p>
  </div>
  <p>Please keep this ticket ID for future reference. You can use it when following up on your inquiry.</p>
  <p>Best regards,<br>The YouthWell Team</p>
  <hr style="margin: 30px 0; border: none; border-top: 1px solid #eee;">
  <p style="font-size: 12px; color: #999;">This is an automated message. Please do not reply to this email.</p>
</div>`))

var adminNotificationTmpl = template.Must(template.New("admin").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">New Contact Form Submission</h2>
  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0; color: #666;">Ticket Information</h3>
    <p><strong>Ticket ID:</strong> <span style="color: #007bff; font-weight: bold;">{{.TicketID}}</span></p>
    <p><strong>Submission Time:</strong> {{.SubmittedAt}}</p>
  </div>
  <div style="background-color: #fff; padding: 20px; border: 1px solid #dee2e6; border-radius: 8px;">
    <h3 style="margin-top: 0; color: #666;">Contact Details</h3>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Message:</strong></p>
    <div style="background-color: #f8f9fa; padding: 15px; border-radius: 4px; margin: 10px 0;">
      {{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}
    </div>
  </div>
  <div style="margin-top: 20px;">
    <p><strong>Action Required:</strong> Please review and respond to this inquiry.</p>
    <p>You can reply directly to: <a href="mailto:{{.Email}}">{{.Email}}</a></p>
  </div>
</div>`))

// SubmissionTimeFormat is how the admin notification renders the submission time.
const SubmissionTimeFormat = "1/2/2006, 3:04:05 PM"

func renderUserConfirmation(name, ticketID string) (string, error) {
	var buf bytes.Buffer
	err := userConfirmationTmpl.Execute(&buf, struct {
		Name     string
		TicketID string
	}{Name: name, TicketID: ticketID})
	if err != nil {
		return "", fmt.Errorf("failed to render confirmation email: %w", err)
	}
	return buf.String(), nil
}

func renderAdminNotification(req models.ContactRequest, ticketID string, at time.Time) (string, error) {
	var buf bytes.Buffer
	err := adminNotificationTmpl.Execute(&buf, struct {
		TicketID    string
		SubmittedAt string
		Name        string
		Email       string
		Lines       []string
	}{
		TicketID:    ticketID,
		SubmittedAt: at.Format(SubmissionTimeFormat),
		Name:        req.Name,
		Email:       req.Email,
		Lines:       strings.Split(strings.ReplaceAll(req.Message, "\r\n", "\n"), "\n"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render notification email: %w", err)
	}
	return buf.String(), nil
}
