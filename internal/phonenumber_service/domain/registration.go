package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Registration is a stored phone number with its bookkeeping columns.
type Registration struct {
	ID        uuid.UUID   `json:"id"`
	Number    PhoneNumber `json:"number"`
	Label     string      `json:"label,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewRegistration creates a new Registration instance.
// ID is typically generated before calling this.
func NewRegistration(id uuid.UUID, number PhoneNumber, label string) *Registration {
	return &Registration{
		ID:        id,
		Number:    number,
		Label:     label,
		CreatedAt: time.Now().UTC(),
	}
}

// PhoneNumberRepository stores registrations keyed by their phone number.
type PhoneNumberRepository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByNumber(ctx context.Context, number PhoneNumber) (*Registration, error)
	// ListAfter returns up to limit registrations ordered by number, starting
	// strictly after the given number. A nil after starts from the beginning.
	ListAfter(ctx context.Context, after *PhoneNumber, limit int) ([]*Registration, error)
	// ListRange returns registrations with from <= number <= to, ordered by
	// number. A non-nil after resumes strictly after that number.
	ListRange(ctx context.Context, from, to PhoneNumber, after *PhoneNumber, limit int) ([]*Registration, error)
	Delete(ctx context.Context, number PhoneNumber) error
	Count(ctx context.Context) (int64, error)
}
