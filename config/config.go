package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"mcstatus-bot/model"
)

// Load reads the configuration from environment variables and the
// optional config.yaml. Secrets live in the environment; runtime
// settings in the config file, all with working defaults.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env file not found, relying on environment variables")
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable not set")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./data")
	v.SetDefault("update_interval", 5*time.Minute)
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("status_source", "ping")
	v.SetDefault("api_base_url", "")
	v.SetDefault("status_file", "data/server_status_config.json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &model.Config{
		BotToken:       token,
		TestGuildID:    os.Getenv("TEST_SERVER_ID"),
		LogChannelID:   os.Getenv("LOG_CHANNEL_ID"),
		StatusFile:     v.GetString("status_file"),
		StatusSource:   v.GetString("status_source"),
		APIBaseURL:     v.GetString("api_base_url"),
		UpdateInterval: v.GetDuration("update_interval"),
		RequestTimeout: v.GetDuration("request_timeout"),
	}
	if cfg.UpdateInterval <= 0 {
		cfg.UpdateInterval = 5 * time.Minute
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	return cfg, nil
}
