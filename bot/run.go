package bot

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"mcstatus-bot/utils"
)

// Run opens the session, registers commands, starts the status sync
// loop and blocks until the process is interrupted.
func (b *Bot) Run() error {
	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}

	b.registerCommands()
	b.scheduler.Start()

	log.Info().Msg("Bot is now running. Press CTRL-C to exit.")
	if b.Config.LogChannelID != "" {
		if err := utils.LogInfo(b.Session, b.Config.LogChannelID, "System", "Startup", "Bot has started successfully."); err != nil {
			log.Warn().Err(err).Msg("Failed to send startup log")
		}
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
	return nil
}
