package utils

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// MessageSender is the subset of discordgo.Session used to publish
// status messages.
type MessageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// UpsertStatusMessage edits the stored status message in place, or
// creates a new one when there is none or the old one is gone. It
// returns the id of the live message. The favicon attachment can only
// be sent at creation time; edits replace the embed content and keep
// whatever attachment the message already carries.
func UpsertStatusMessage(s MessageSender, channelID, messageID string, embed *discordgo.MessageEmbed, file *discordgo.File) (string, error) {
	if messageID != "" {
		embeds := []*discordgo.MessageEmbed{embed}
		_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel: channelID,
			ID:      messageID,
			Embeds:  &embeds,
		})
		if err == nil {
			return messageID, nil
		}
		if !isUnknownMessage(err) {
			return "", fmt.Errorf("edit status message %s: %w", messageID, err)
		}
		// The old message was deleted; fall through and repost.
	}

	send := &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}}
	if file != nil {
		send.Files = []*discordgo.File{file}
	}
	msg, err := s.ChannelMessageSendComplex(channelID, send)
	if err != nil {
		return "", fmt.Errorf("send status message: %w", err)
	}
	return msg.ID, nil
}

// isUnknownMessage reports whether err is Discord's "Unknown Message"
// error, meaning the stored id no longer refers to a live message.
func isUnknownMessage(err error) bool {
	var rerr *discordgo.RESTError
	if errors.As(err, &rerr) && rerr.Message != nil {
		return rerr.Message.Code == discordgo.ErrCodeUnknownMessage
	}
	return false
}
