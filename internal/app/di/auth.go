package di

import (
	"gorm.io/gorm"

	authadapters "loginform/internal/feature/auth/adapters"
	authhandler "loginform/internal/feature/auth/transport/handler"
	authusecase "loginform/internal/feature/auth/usecase"
	jwtmw "loginform/internal/platform/jwt"
)

// NewAuthHandler wires repository, token generator and usecase for the auth server.
func NewAuthHandler(db *gorm.DB, cfg jwtmw.Config) *authhandler.AuthHandler {
	users := authadapters.NewUserGorm(db)
	tokens := jwtmw.NewGenerator(cfg.Secret, cfg.Expiration)
	return authhandler.NewAuthHandler(authusecase.NewAuthUsecase(users, tokens))
}
