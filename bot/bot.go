package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"mcstatus-bot/commands"
	"mcstatus-bot/model"
	"mcstatus-bot/status"
	"mcstatus-bot/utils"
)

type Bot struct {
	Session         *discordgo.Session
	Config          *model.Config
	Watches         *utils.WatchStore
	Source          status.Source
	CommandHandlers map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)

	scheduler          *Scheduler
	registeredCommands []*discordgo.ApplicationCommand
}

func New(cfg *model.Config, watches *utils.WatchStore, source status.Source) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	b := &Bot{
		Session: dg,
		Config:  cfg,
		Watches: watches,
		Source:  source,
	}
	b.scheduler = NewScheduler(b)
	return b, nil
}

func (b *Bot) Close() {
	log.Info().Msg("Gracefully shutting down")
	b.scheduler.Stop()
	b.Session.Close()
}

// registerCommands overwrites the bot's application commands. When a
// test guild is configured the commands are registered there only,
// which makes them available immediately; otherwise they are global.
func (b *Bot) registerCommands() {
	cmds := commands.GenerateCommands()
	registered, err := b.Session.ApplicationCommandBulkOverwrite(b.Session.State.User.ID, b.Config.TestGuildID, cmds)
	if err != nil {
		log.Error().Err(err).Msg("Cannot register application commands")
		return
	}
	b.registeredCommands = registered
	log.Info().Msgf("Registered %d application commands", len(registered))
}
