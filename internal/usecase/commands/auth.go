//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

package commands

import (
	"context"
	"log/slog"

	"invoice-dashboard/internal/domain/auth"
	"invoice-dashboard/internal/usecase/shared"
)

const PathLogin = "/login"

const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSomethingWentWrong = "Something went wrong."
)

type AuthCommands interface {
	// Authenticate returns an error only when the failure is not an
	// identity provider error.
	Authenticate(ctx context.Context, form shared.SignInForm) (Result, error)
	SignOut(ctx context.Context) Result
}

type authCommandsImpl struct {
	identity shared.IdentityProvider
	metrics  shared.ActionMetrics
}

func NewAuthCommands(identity shared.IdentityProvider, metrics shared.ActionMetrics) AuthCommands {
	return &authCommandsImpl{
		identity: identity,
		metrics:  metrics,
	}
}

func (a *authCommandsImpl) Authenticate(ctx context.Context, form shared.SignInForm) (Result, error) {
	form.RedirectTo = PathDashboard

	session, err := a.identity.SignIn(ctx, auth.ProviderCredentials, form)
	if err != nil {
		ae, ok := auth.AsError(err)
		if !ok {
			a.metrics.ObserveSignIn(OutcomeFailed)
			return nil, err
		}

		slog.Info("sign in rejected", "kind", string(ae.Kind))
		switch ae.Kind {
		case auth.KindCredentialsSignin:
			a.metrics.ObserveSignIn(OutcomeDenied)
			return ActionState{Message: MsgInvalidCredentials}, nil
		default:
			a.metrics.ObserveSignIn(OutcomeFailed)
			return ActionState{Message: MsgSomethingWentWrong}, nil
		}
	}

	a.metrics.ObserveSignIn(OutcomeSuccess)
	return SignedIn{
		Session:  session,
		Redirect: RedirectTo{Path: form.RedirectTo},
	}, nil
}

func (a *authCommandsImpl) SignOut(_ context.Context) Result {
	return RedirectTo{Path: PathLogin}
}
