package dashboard

import (
	"context"
	"fmt"

	"github.com/benvon/youthwell/internal/models"
	"github.com/benvon/youthwell/internal/validation"
)

// ContactForm submits support requests.
type ContactForm struct {
	api API
}

// Submit checks req locally, then sends it. Server errors are returned as is
// so their message can be shown.
func (f *ContactForm) Submit(ctx context.Context, req models.ContactRequest) (models.ContactResponse, error) {
	if err := validation.ValidateContact(&req); err != nil {
		return models.ContactResponse{}, fmt.Errorf("contact form: %w", err)
	}
	return f.api.Contact(ctx, req)
}
