package main

import (
	"log"

	"loginform/internal/app/di"
	"loginform/internal/app/router"
	"loginform/internal/feature/auth/domain/entity"
	"loginform/internal/platform/config"
	"loginform/internal/platform/db"
	jwtmw "loginform/internal/platform/jwt"
)

func main() {
	// .envを読み込む
	config.LoadDotEnv()
	config.SetupLogger()

	// DB初期化（既定はSQLite）
	gdb, err := db.Open(db.LoadConfigFromEnv(), &entity.User{})
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	jwtCfg, err := jwtmw.LoadConfig()
	if err != nil {
		log.Fatalf("invalid jwt config: %v", err)
	}
	r := router.NewAuthRouter(di.NewAuthHandler(gdb, jwtCfg), jwtCfg.Secret)

	addr := config.String("AUTH_ADDR", ":8000")
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
