//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

package shared

import (
	"context"
	"time"

	"invoice-dashboard/internal/domain/invoice"

	"github.com/google/uuid"
)

// Database hands out a dedicated connection per operation.
type Database interface {
	Connect(ctx context.Context) (Connection, error)
}

// Connection must be released exactly once by whoever acquired it.
type Connection interface {
	Invoices() InvoiceRepository
	Release()
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *invoice.Invoice) error
	// Update returns the number of rows matched by id.
	Update(ctx context.Context, ch *invoice.Changes) (int64, error)
	Delete(ctx context.Context, id string) error
}

// ViewInvalidator marks a rendered view stale so it is recomputed on next access.
type ViewInvalidator interface {
	Invalidate(ctx context.Context, path string)
}

type SignInForm struct {
	Email      string
	Password   string
	RedirectTo string
}

type Session struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// IdentityProvider verifies credentials. Provider failures are *auth.Error,
// anything else is an infrastructure failure.
type IdentityProvider interface {
	SignIn(ctx context.Context, provider string, form SignInForm) (Session, error)
}

type ActionMetrics interface {
	ObserveMutation(action, outcome string)
	ObserveSignIn(outcome string)
}
