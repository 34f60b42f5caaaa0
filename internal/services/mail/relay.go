// Package mail relays contact form submissions over SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-gomail/gomail"
	"go.uber.org/zap"

	"github.com/benvon/youthwell/internal/logger"
	"github.com/benvon/youthwell/internal/models"
)

const (
	// DefaultSMTPHost is used when no host is configured.
	DefaultSMTPHost = "smtp.gmail.com"
	// DefaultSMTPPort is the submission port.
	DefaultSMTPPort = 587
	// DefaultSenderName is the display name on outgoing mail.
	DefaultSenderName = "YouthWell Support"
	// SendTimeout bounds one SendContact call.
	SendTimeout = 15 * time.Second
)

var (
	// ErrNotConfigured means the relay has no credentials.
	ErrNotConfigured = errors.New("email service not configured")
	// ErrAuthFailed means the SMTP server refused the connection or the credentials.
	ErrAuthFailed = errors.New("email authentication failed")
	// ErrSendTimeout means the server did not accept both messages in time.
	ErrSendTimeout = errors.New("email sending timeout")
)

// Config holds the SMTP settings.
type Config struct {
	User       string
	Pass       string
	Host       string
	Port       int
	SenderName string
	AdminEmail string
}

// Dialer opens an authenticated SMTP session. *gomail.Dialer implements it.
type Dialer interface {
	Dial() (gomail.SendCloser, error)
}

// Relay sends the confirmation and notification mails for one submission.
type Relay struct {
	cfg     Config
	dialer  Dialer
	logger  *zap.Logger
	now     func() time.Time
	timeout time.Duration
}

// NewRelay builds a relay from cfg, filling defaults.
func NewRelay(cfg Config, log *zap.Logger) *Relay {
	if cfg.Host == "" {
		cfg.Host = DefaultSMTPHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultSMTPPort
	}
	if cfg.SenderName == "" {
		cfg.SenderName = DefaultSenderName
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = cfg.User
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Relay{
		cfg:     cfg,
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		logger:  log,
		now:     time.Now,
		timeout: SendTimeout,
	}
}

// WithDialer replaces the SMTP dialer. Intended for tests.
func (r *Relay) WithDialer(d Dialer) *Relay {
	r.dialer = d
	return r
}

// Configured reports whether credentials are present.
func (r *Relay) Configured() bool {
	return r.cfg.User != "" && r.cfg.Pass != ""
}

// SendContact delivers the user confirmation and the admin notification.
func (r *Relay) SendContact(ctx context.Context, req models.ContactRequest, ticketID string) error {
	if !r.Configured() {
		return ErrNotConfigured
	}

	if flags := ClassifyAddress(req.Email); flags.Flagged() {
		r.logger.Warn("contact_address_flagged",
			zap.String("ticket_id", ticketID),
			zap.String("recipient", logger.SanitizeEmail(req.Email)),
			zap.Bool("disposable", flags.Disposable),
			zap.Bool("role_account", flags.Role),
		)
	}

	userMsg, adminMsg, err := r.buildMessages(req, ticketID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- r.dialAndSend(userMsg, adminMsg)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			r.logger.Error("contact_email_failed",
				zap.String("ticket_id", ticketID),
				zap.String("recipient", logger.SanitizeEmail(req.Email)),
				zap.Bool("auth_failed", errors.Is(err, ErrAuthFailed)),
				zap.Error(err),
			)
			return err
		}
		r.logger.Info("contact_email_sent",
			zap.String("ticket_id", ticketID),
			zap.String("recipient", logger.SanitizeEmail(req.Email)),
		)
		return nil
	case <-ctx.Done():
		r.logger.Error("contact_email_timeout", zap.String("ticket_id", ticketID))
		return ErrSendTimeout
	}
}

func (r *Relay) dialAndSend(msgs ...*gomail.Message) error {
	sc, err := r.dialer.Dial()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	defer func() { _ = sc.Close() }()

	if err := gomail.Send(sc, msgs...); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}

func (r *Relay) buildMessages(req models.ContactRequest, ticketID string) (*gomail.Message, *gomail.Message, error) {
	userBody, err := renderUserConfirmation(req.Name, ticketID)
	if err != nil {
		return nil, nil, err
	}
	adminBody, err := renderAdminNotification(req, ticketID, r.now())
	if err != nil {
		return nil, nil, err
	}

	userMsg := gomail.NewMessage()
	userMsg.SetAddressHeader("From", r.cfg.User, r.cfg.SenderName)
	userMsg.SetHeader("To", req.Email)
	userMsg.SetHeader("Subject", "We've received your message - Ticket #"+ticketID)
	userMsg.SetBody("text/html", userBody)

	adminMsg := gomail.NewMessage()
	adminMsg.SetAddressHeader("From", r.cfg.User, r.cfg.SenderName+" Contact Form")
	adminMsg.SetHeader("To", r.cfg.AdminEmail)
	adminMsg.SetHeader("Reply-To", req.Email)
	adminMsg.SetHeader("Subject", "New Contact Form Submission - Ticket #"+ticketID)
	adminMsg.SetBody("text/html", adminBody)

	return userMsg, adminMsg, nil
}
