// Command mockapi serves a development registration backend that speaks the
// same POST /users/register contract as the real one.
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"usersignup/internal/config"
	"usersignup/internal/database"
	"usersignup/internal/middleware"
	"usersignup/internal/modules/users"
	jwtsvc "usersignup/internal/pkg/jwt"
	"usersignup/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	cfg, err := config.LoadMockAPIConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.StorageDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.MigrateMockAPI(db); err != nil {
		log.Fatalf("mockapi migrate failed: %v", err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)
	handler := users.NewHandler(users.NewService(repository.NewMockUserRepository(db), j))

	r := gin.New()
	r.Use(gin.Logger(), middleware.RequestID(), middleware.ErrorLogger(), middleware.CORS())
	handler.RegisterRoutes(r)

	log.Printf("mockapi listening addr=%s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
