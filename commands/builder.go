package commands

import "github.com/bwmarrin/discordgo"

var manageChannels int64 = discordgo.PermissionManageChannels

// GenerateCommands returns the application commands the bot exposes.
func GenerateCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "status",
			Description: "Look up the current status of a Minecraft server",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "server_address",
					Description: "The address of the Minecraft server",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "display_name",
					Description: "Display name shown in the reply",
					Required:    false,
				},
			},
		},
		{
			Name:                     "autostatus",
			Description:              "Set up an auto-updating server status message in this channel",
			DefaultMemberPermissions: &manageChannels,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Display name for the server",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "server_address",
					Description: "Server address (host or host:port)",
					Required:    true,
				},
			},
		},
		{
			Name:        "botinfo",
			Description: "Show bot runtime and system information",
		},
		{
			Name:        "ping",
			Description: "Replies with a ping!",
		},
		{
			Name:        "hello",
			Description: "Replies with a greeting!",
		},
	}
}
