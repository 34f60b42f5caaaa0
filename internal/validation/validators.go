package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/benvon/youthwell/internal/models"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate

	// ErrMissingFields reports an absent or blank required field.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidEmail reports a malformed email address.
	ErrInvalidEmail = errors.New("invalid email address")
)

func init() {
	Validate = validator.New()

	// Registration only fails on a programming error
	if err := Validate.RegisterValidation("mood", validateMood); err != nil {
		panic(fmt.Sprintf("failed to register mood validator: %v", err))
	}
}

// validateMood accepts any casing of a known mood
func validateMood(fl validator.FieldLevel) bool {
	_, ok := models.ParseMood(fl.Field().String())
	return ok
}

// SanitizeText sanitizes text input by trimming whitespace and removing control characters
func SanitizeText(text string) string {
	// Trim whitespace
	text = strings.TrimSpace(text)

	// Remove control characters except newline and tab
	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}

// ValidateMood validates a mood label
func ValidateMood(value string) (models.Mood, error) {
	m, ok := models.ParseMood(value)
	if !ok {
		return "", fmt.Errorf("invalid mood: %s (must be one of happy, sad, stressed, anxious, calm, tired)", value)
	}
	return m, nil
}

// ValidateContact sanitizes req in place and checks it. It returns
// ErrMissingFields or ErrInvalidEmail.
func ValidateContact(req *models.ContactRequest) error {
	req.Name = SanitizeText(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = SanitizeText(req.Message)

	if err := Validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Tag() == "required" {
					return ErrMissingFields
				}
			}
			return ErrInvalidEmail
		}
		return fmt.Errorf("failed to validate contact request: %w", err)
	}
	return nil
}
