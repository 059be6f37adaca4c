//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock
package usecase

import (
	"invoice-dashboard/internal/pkg/jwt"

	"github.com/google/uuid"
)

// SessionValidator checks the session token carried by the cookie.
type SessionValidator interface {
	ValidateSession(token string) (uuid.UUID, error)
}

type sessionValidatorImpl struct {
	jwtService *jwt.Service
}

func NewSessionValidator(jwtService *jwt.Service) SessionValidator {
	return &sessionValidatorImpl{
		jwtService: jwtService,
	}
}

func (s *sessionValidatorImpl) ValidateSession(token string) (uuid.UUID, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, jwt.ErrInvalidToken
	}
	return claims.UserID, nil
}
