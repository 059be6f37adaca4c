package request

import (
	"invoice-dashboard/internal/usecase/shared"
)

type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// ToSignInForm leaves RedirectTo empty. Authenticate decides where to go.
func (r LoginRequest) ToSignInForm() shared.SignInForm {
	return shared.SignInForm{
		Email:    r.Email,
		Password: r.Password,
	}
}
