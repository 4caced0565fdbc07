// Package di provides dependency injection factories for creating application components.
package di

import (
	"loginform/internal/feature/loginform/adapters/authapi"
	formhandler "loginform/internal/feature/loginform/transport/handler"
	"loginform/internal/feature/loginform/usecase"
	infrahttp "loginform/internal/platform/http"
)

// NewLoginFormFactory returns a constructor for per-request form controllers.
// All controllers share one auth API client and its connection pool.
func NewLoginFormFactory(cfg authapi.Config) func() formhandler.LoginForm {
	client := authapi.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
	return func() formhandler.LoginForm {
		return usecase.NewFormController(client)
	}
}

// NewFormHandler wires the login page handler against the configured auth endpoint.
func NewFormHandler(cfg authapi.Config) *formhandler.FormHandler {
	return formhandler.NewFormHandler(NewLoginFormFactory(cfg), "/")
}
