package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"invoice-dashboard/internal/domain/auth"
	"invoice-dashboard/internal/domain/user"
	"invoice-dashboard/internal/infra"
	"invoice-dashboard/internal/pkg/password"
	"invoice-dashboard/internal/usecase/queries"
	"invoice-dashboard/internal/usecase/shared"

	"github.com/google/uuid"
)

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, email string) (string, time.Time, error)
}

// CredentialsProvider signs users in with an email and password checked
// against the stored bcrypt hash.
type CredentialsProvider struct {
	users  queries.UserReadStore
	tokens TokenIssuer
}

func NewCredentialsProvider(users queries.UserReadStore, tokens TokenIssuer) shared.IdentityProvider {
	return &CredentialsProvider{
		users:  users,
		tokens: tokens,
	}
}

func (p *CredentialsProvider) SignIn(ctx context.Context, provider string, form shared.SignInForm) (shared.Session, error) {
	if provider != auth.ProviderCredentials {
		return shared.Session{}, auth.NewError(auth.KindConfiguration, fmt.Errorf("unknown provider %q", provider))
	}

	creds, err := auth.NewCredentials(form.Email, form.Password)
	if err != nil {
		return shared.Session{}, auth.NewError(auth.KindCredentialsSignin, err)
	}

	stored, hash, err := p.users.FindByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return shared.Session{}, auth.NewError(auth.KindCredentialsSignin, nil)
		}
		return shared.Session{}, err
	}

	account := user.ReconstructUser(stored.ID, stored.Name, creds.Email(), hash)

	if err := password.Compare(account.PasswordHash(), creds.Password().Value()); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return shared.Session{}, auth.NewError(auth.KindCredentialsSignin, nil)
		}
		return shared.Session{}, auth.NewError(auth.KindCallbackRouteError, err)
	}

	token, expiresAt, err := p.tokens.GenerateToken(account.ID(), account.Email().Value())
	if err != nil {
		return shared.Session{}, auth.NewError(auth.KindConfiguration, err)
	}

	return shared.Session{
		Token:     token,
		UserID:    account.ID(),
		ExpiresAt: expiresAt,
	}, nil
}
