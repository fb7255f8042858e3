package handlers

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"mcstatus-bot/bot"
	"mcstatus-bot/utils"
)

// HandleAutoStatusInteraction registers or updates the auto-updating
// status message for the invoking guild. The watch is persisted before
// the first publish, so a failed lookup only delays the message until
// the next sync cycle.
func HandleAutoStatusInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if i.GuildID == "" || i.ChannelID == "" {
		utils.SendErrorResponse(s, i, "This command must be used in a server channel")
		return
	}

	data := i.ApplicationCommandData()
	name := strings.ReplaceAll(stringOption(data, "name"), "_", " ")
	address := stringOption(data, "server_address")
	if address == "" {
		utils.SendErrorResponse(s, i, "A server address is required")
		return
	}

	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Error().Err(err).Msg("Failed to defer autostatus response")
		return
	}

	b.Watches.Register(i.GuildID, i.ChannelID, address, name)
	log.Info().Str("guild", i.GuildID).Str("address", address).Msg("Registered status watch")
	if b.Config.LogChannelID != "" {
		if err := utils.LogInfo(s, b.Config.LogChannelID, "AutoStatus", "Register",
			fmt.Sprintf("Guild %s now watches %s", i.GuildID, address)); err != nil {
			log.Warn().Err(err).Msg("Failed to send registration log")
		}
	}

	snap, err := b.Source.Fetch(address)
	if err != nil {
		log.Debug().Err(err).Str("address", address).Msg("Initial status lookup failed")
		utils.SendFollowUpError(s, i.Interaction, "Could not fetch server status. Will retry later.")
		return
	}

	embed, file := utils.BuildStatusEmbed(snap, address, name)
	msgID, err := utils.UpsertStatusMessage(s, i.ChannelID, "", embed, file)
	if err != nil {
		log.Error().Err(err).Str("guild", i.GuildID).Msg("Failed to create status message")
		utils.SendFollowUpError(s, i.Interaction, "Failed to create status message")
		return
	}

	b.Watches.SetMessageID(i.GuildID, msgID)
	utils.SendFollowUp(s, i.Interaction, "Auto-status message created successfully!")
}
