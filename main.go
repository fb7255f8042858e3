package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mcstatus-bot/bot"
	"mcstatus-bot/config"
	"mcstatus-bot/handlers"
	"mcstatus-bot/status"
	"mcstatus-bot/utils"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	watches := utils.LoadWatchStore(cfg.StatusFile)

	source, err := status.NewSource(cfg.StatusSource, cfg.APIBaseURL, cfg.RequestTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create status source")
	}

	b, err := bot.New(cfg, watches, source)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}
	defer b.Close()

	handlers.Register(b)

	if err := b.Run(); err != nil {
		log.Fatal().Err(err).Msg("Bot terminated")
	}
}
