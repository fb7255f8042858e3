package handlers

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"mcstatus-bot/bot"
	"mcstatus-bot/utils"
)

// HandleStatusInteraction answers a one-shot server status query.
func HandleStatusInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	data := i.ApplicationCommandData()
	address := stringOption(data, "server_address")
	displayName := stringOption(data, "display_name")
	if address == "" {
		utils.SendErrorResponse(s, i, "A server address is required")
		return
	}

	// The lookup can take seconds; defer so the interaction token
	// does not expire.
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Error().Err(err).Msg("Failed to defer status response")
		return
	}

	snap, err := b.Source.Fetch(address)
	if err != nil {
		log.Debug().Err(err).Str("address", address).Msg("Status lookup failed, rendering offline")
		snap = nil
	}

	embed, file := utils.BuildStatusEmbed(snap, address, displayName)
	utils.SendFollowUpEmbed(s, i.Interaction, embed, file)
}
