package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"mcstatus-bot/utils"
)

func HandlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	utils.SendSimpleResponse(s, i, fmt.Sprintf("Pong! %s", callerMention(i)))
}

func HandleHello(s *discordgo.Session, i *discordgo.InteractionCreate) {
	utils.SendPublicResponse(s, i, fmt.Sprintf("Hello, %s!", callerMention(i)))
}
