package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	logpkg "github.com/benvon/youthwell/internal/logger"
	"github.com/benvon/youthwell/internal/metrics"
	"github.com/benvon/youthwell/internal/models"
	"github.com/benvon/youthwell/internal/request"
	"github.com/benvon/youthwell/internal/services/mail"
	"github.com/benvon/youthwell/internal/validation"
)

// Contact route messages.
const (
	ContactSuccessMessage       = "Your message has been sent successfully!"
	ContactMissingFieldsMessage = "Missing required fields"
	ContactInvalidEmailMessage  = "Invalid email address"
	ContactNotConfiguredMessage = "Email service not configured. Please contact administrator."
	ContactAuthFailedMessage    = "Email configuration failed. Please check your credentials."
	ContactSendFailedMessage    = "Failed to send message. Please try again later."
)

// Mailer relays contact submissions. *mail.Relay implements it.
type Mailer interface {
	SendContact(ctx context.Context, req models.ContactRequest, ticketID string) error
}

// ContactHandler handles contact form submissions
type ContactHandler struct {
	mailer   Mailer
	logger   *zap.Logger
	ticketID func() string
}

// NewContactHandler creates a new contact handler
func NewContactHandler(mailer Mailer, logger *zap.Logger) *ContactHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactHandler{mailer: mailer, logger: logger, ticketID: mail.NewTicketID}
}

// RegisterRoutes registers contact routes
func (h *ContactHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/contact", h.Submit).Methods("POST")
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if err := validation.ValidateContact(&req); err != nil {
		msg := ContactMissingFieldsMessage
		if errors.Is(err, validation.ErrInvalidEmail) {
			msg = ContactInvalidEmailMessage
		}
		metrics.ContactSubmissionsTotal.WithLabelValues("invalid").Inc()
		respondJSONError(w, http.StatusBadRequest, msg, h.logger)
		return
	}

	ticketID := h.ticketID()
	err := h.mailer.SendContact(r.Context(), req, ticketID)
	switch {
	case err == nil:
		metrics.ContactSubmissionsTotal.WithLabelValues("sent").Inc()
		h.logger.Info("contact_submitted",
			zap.String("ticket_id", ticketID),
			zap.String("email", logpkg.SanitizeEmail(req.Email)),
			zap.String("request_id", request.RequestID(r.Context())),
		)
		respondJSON(w, http.StatusOK, models.ContactResponse{
			Success:  true,
			Message:  ContactSuccessMessage,
			TicketID: ticketID,
		}, h.logger)
	case errors.Is(err, mail.ErrNotConfigured):
		metrics.ContactSubmissionsTotal.WithLabelValues("not_configured").Inc()
		h.logger.Error("contact_mail_not_configured",
			zap.String("request_id", request.RequestID(r.Context())),
		)
		respondJSONError(w, http.StatusInternalServerError, ContactNotConfiguredMessage, h.logger)
	case errors.Is(err, mail.ErrAuthFailed):
		metrics.ContactSubmissionsTotal.WithLabelValues("auth_failed").Inc()
		respondJSONErrorDetails(w, http.StatusInternalServerError, ContactAuthFailedMessage, err.Error(), h.logger)
	default:
		metrics.ContactSubmissionsTotal.WithLabelValues("failed").Inc()
		respondJSONError(w, http.StatusInternalServerError, ContactSendFailedMessage, h.logger)
	}
}
