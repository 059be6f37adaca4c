package auth

import "errors"

// ProviderCredentials is the only identity provider the dashboard signs in with.
const ProviderCredentials = "credentials"

type ErrorKind string

const (
	KindCredentialsSignin  ErrorKind = "CredentialsSignin"
	KindCallbackRouteError ErrorKind = "CallbackRouteError"
	KindConfiguration      ErrorKind = "Configuration"
	KindAccessDenied       ErrorKind = "AccessDenied"
)

// Error is raised by an identity provider. Any other error coming out of
// a sign-in is not an authentication failure.
type Error struct {
	Kind ErrorKind
	err  error
}

func NewError(kind ErrorKind, cause error) *Error {
	return &Error{Kind: kind, err: cause}
}

func (e *Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.err
}

// AsError reports whether err carries an identity provider error.
func AsError(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
