package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"mcstatus-bot/status"
)

const (
	colorOnline  = 0x55FF55
	colorOffline = 0xFF5555

	faviconAttachmentName = "server_icon.png"
	maxFaviconURLLength   = 2048
)

// Proxy and loader brands whose name prefixes the version string some
// servers report. When recognized, only the underlying game version is
// shown.
var versionBrands = []string{
	"velocity", "bungeecord", "paper", "waterfall", "purpur",
	"spigot", "fabric", "forge", "quilt", "sponge", "bukkit",
}

// BuildStatusEmbed renders a status snapshot into an embed plus an
// optional attached favicon. A nil snapshot renders the offline
// variant. The function performs no I/O.
func BuildStatusEmbed(snap *status.Snapshot, address, displayName string) (*discordgo.MessageEmbed, *discordgo.File) {
	title := displayName
	if title == "" {
		title = "Minecraft Server"
	}

	state := "Offline"
	color := colorOffline
	motd := "No MOTD"
	players := "0/0"
	version := "Unknown"
	if snap != nil {
		state = "Online"
		color = colorOnline
		if strings.TrimSpace(snap.MOTD) != "" {
			motd = snap.MOTD
		}
		players = fmt.Sprintf("%d/%d", snap.PlayersOnline, snap.PlayersMax)
		version = normalizeVersion(snap.Version)
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s — %s", title, state),
		Description: motd,
		Color:       color,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Address", Value: fmt.Sprintf("`%s`", address), Inline: true},
			{Name: "Players", Value: players, Inline: true},
			{Name: "Version", Value: version, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Last Updated"},
	}

	var file *discordgo.File
	if snap != nil {
		embed.Thumbnail, file = faviconThumbnail(snap.Favicon)
	}
	return embed, file
}

// normalizeVersion strips a recognized brand prefix so the underlying
// game version is surfaced, e.g. "Velocity 1.20.1" -> "1.20.1".
func normalizeVersion(raw string) string {
	if raw == "" {
		return "Unknown"
	}
	fields := strings.Fields(raw)
	if len(fields) >= 2 {
		for _, brand := range versionBrands {
			if strings.EqualFold(fields[0], brand) {
				return fields[1]
			}
		}
	}
	return raw
}

// faviconThumbnail turns the favicon reported by a server into either
// an attachment-backed thumbnail or a direct URL reference. Inline
// payloads that fail to decode and URLs over the length bound degrade
// to no image.
func faviconThumbnail(favicon string) (*discordgo.MessageEmbedThumbnail, *discordgo.File) {
	if favicon == "" {
		return nil, nil
	}

	if strings.HasPrefix(favicon, "data:image") {
		_, b64, found := strings.Cut(favicon, "base64,")
		if !found {
			return nil, nil
		}
		// Some servers wrap the base64 payload in newlines.
		b64 = strings.NewReplacer("\n", "", "\r", "").Replace(b64)
		data, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to decode inline favicon")
			return nil, nil
		}
		thumb := &discordgo.MessageEmbedThumbnail{URL: "attachment://" + faviconAttachmentName}
		file := &discordgo.File{
			Name:        faviconAttachmentName,
			ContentType: "image/png",
			Reader:      bytes.NewReader(data),
		}
		return thumb, file
	}

	if len(favicon) > maxFaviconURLLength {
		return nil, nil
	}
	return &discordgo.MessageEmbedThumbnail{URL: favicon}, nil
}
