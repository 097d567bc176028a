package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"blog-backend/pkg/logger"
)

func main() {
	// .env is for development; production uses real environment variables.
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Init(env)

	Serve()
}
