package main

import (
	"fmt"
	"os"

	"github.com/jayakosta/Personal-Finance-Tracker/internal/config"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/database"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/router"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// .env is optional; the chat API key usually lives there
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if cfg.Session.Secret == "" {
		log.Fatal().Msg("session.secret must be set")
	}
	if cfg.Chat.APIKey == "" {
		log.Warn().Msg("GROQ_API_KEY not set, chat will always fall back")
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("init database")
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	r := router.SetupRouter(cfg, db, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("server listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("run server")
	}
}
