package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"prothink-api/internal/auth"
	"prothink-api/internal/config"
	"prothink-api/internal/db"
	"prothink-api/internal/router"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	pool := db.NewPool(ctx, cfg.DatabaseURL)
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := db.Seed(ctx, pool); err != nil {
		log.Fatalf("seed: %v", err)
	}

	creds := make(map[string]auth.Credential, len(cfg.DemoUsers))
	for email, u := range cfg.DemoUsers {
		creds[email] = auth.Credential{Password: u.Password, Name: u.Name, Role: u.Role}
	}
	authSvc, err := auth.NewService(cfg.JWTSecret, cfg.TokenTTL, creds)
	if err != nil {
		log.Fatalf("auth service: %v", err)
	}

	r := gin.Default()
	router.Setup(r, pool, authSvc)

	log.Printf("listening on :%s ...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
