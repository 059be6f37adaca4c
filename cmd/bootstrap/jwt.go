package bootstrap

import (
	"time"

	"invoice-dashboard/internal/pkg/config"
	"invoice-dashboard/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	sessionDuration, err := time.ParseDuration(cfg.Auth.SessionDuration)
	if err != nil {
		panic("invalid AUTH_SESSION_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.Auth.Secret, sessionDuration)
}
