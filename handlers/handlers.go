package handlers

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"mcstatus-bot/bot"
)

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"status": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleStatusInteraction(s, i, b)
		},
		"autostatus": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleAutoStatusInteraction(s, i, b)
		},
		"botinfo": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			SystemInfoHandler(s, i, b)
		},
		"ping":  HandlePing,
		"hello": HandleHello,
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Info().Msgf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
		for _, g := range r.Guilds {
			log.Info().Msgf("Connected to guild %s", g.ID)
		}
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	})
}

// stringOption extracts a string option from a command invocation by
// name, or "" when absent.
func stringOption(data discordgo.ApplicationCommandInteractionData, name string) string {
	for _, opt := range data.Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// callerMention works for both guild and direct-message invocations.
func callerMention(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Mention()
	}
	if i.User != nil {
		return i.User.Mention()
	}
	return ""
}
