package main

import (
	"log"
	"log/slog"

	"loginform/internal/app/di"
	"loginform/internal/app/router"
	"loginform/internal/feature/loginform/adapters/authapi"
	"loginform/internal/platform/config"
)

func main() {
	// .envを読み込む
	config.LoadDotEnv()
	config.SetupLogger()

	cfg := authapi.LoadConfig()
	slog.Info("login endpoint configured", "url", cfg.LoginURL, "timeout", cfg.Timeout)

	r := router.NewWebRouter(di.NewFormHandler(cfg))

	addr := config.String("WEB_ADDR", ":3000")
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
