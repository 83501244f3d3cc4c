package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"usersignup/internal/config"
	"usersignup/internal/database"
	"usersignup/internal/middleware"
	"usersignup/internal/modules/registration"
	"usersignup/internal/modules/signup"
	"usersignup/internal/modules/web"
	"usersignup/internal/repository"
	"usersignup/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	cfg, err := config.LoadClientConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.StorageDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.MigrateClient(db); err != nil {
		log.Fatalf("storage migrate failed: %v", err)
	}

	storage := repository.NewStorageRepository(db)
	sessions := session.NewStore()
	navigator := web.NewNavigator()
	client := registration.NewClient(cfg.BaseURL, nil)

	form := signup.NewForm(client, sessions, storage, navigator)
	handler := web.NewHandler(form, navigator, sessions, storage)

	r := gin.New()
	r.Use(gin.Logger(), middleware.RequestID(), middleware.ErrorLogger())
	r.SetHTMLTemplate(web.Templates())
	handler.RegisterRoutes(r)

	log.Printf("signup web listening addr=%s base_url=%s", cfg.WebAddr, cfg.BaseURL)
	if err := r.Run(cfg.WebAddr); err != nil {
		log.Fatal(err)
	}
}
