package model

import "time"

// Config holds the application configuration assembled at startup from
// the environment and the optional config.yaml.
type Config struct {
	BotToken     string
	TestGuildID  string
	LogChannelID string

	StatusFile     string
	StatusSource   string
	APIBaseURL     string
	UpdateInterval time.Duration
	RequestTimeout time.Duration
}

// WatchEntry describes what a guild watches and where its status
// message lives. One entry per guild, keyed by guild id in the store.
type WatchEntry struct {
	ChannelID     string `json:"channel_id"`
	ServerAddress string `json:"server_address"`
	Name          string `json:"name,omitempty"`
	MessageID     string `json:"message_id,omitempty"`
}

// Valid reports whether the entry carries enough information for the
// sync loop to act on it.
func (e WatchEntry) Valid() bool {
	return e.ChannelID != "" && e.ServerAddress != ""
}
