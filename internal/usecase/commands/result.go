package commands

import "invoice-dashboard/internal/usecase/shared"

// Result is what an action hands back to the caller. Control transfer
// is a value here, never a panic.
type Result interface {
	isResult()
}

// ActionState is rendered back into the form: inline field errors plus a banner message.
type ActionState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// RedirectTo ends the request by navigating the caller to Path.
type RedirectTo struct {
	Path string
}

// SignedIn carries the new session along with the post-login redirect.
type SignedIn struct {
	Session  shared.Session
	Redirect RedirectTo
}

func (ActionState) isResult() {}
func (RedirectTo) isResult()  {}
func (SignedIn) isResult()    {}

// Metric outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeDBError = "db_error"
	OutcomeDenied  = "denied"
	OutcomeFailed  = "failed"
)
