//go:build unit || e2e

package builder

import (
	"net/url"

	reqdto "invoice-dashboard/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "user@nextmail.com",
		Password: DefaultPassword,
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildFormValues() url.Values {
	return url.Values{
		"email":    {a.Email},
		"password": {a.Password},
	}
}
