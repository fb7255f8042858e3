package utils

import (
	"encoding/base64"
	"strings"
	"testing"

	"mcstatus-bot/status"
)

func TestNormalizeVersion(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Velocity 1.20.1", "1.20.1"},
		{"paper 1.21", "1.21"},
		{"BungeeCord 1.19.4", "1.19.4"},
		{"1.20.1", "1.20.1"},
		{"velocity", "velocity"},
		{"Vanilla 1.20.1", "Vanilla 1.20.1"},
		{"", "Unknown"},
	}
	for _, c := range cases {
		if got := normalizeVersion(c.raw); got != c.want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestBuildStatusEmbedOffline(t *testing.T) {
	embed, file := BuildStatusEmbed(nil, "mc.example.com:25565", "")
	if file != nil {
		t.Fatal("offline embed should carry no attachment")
	}
	if !strings.HasSuffix(embed.Title, "Offline") {
		t.Errorf("title = %q, want offline indicator", embed.Title)
	}
	if !strings.Contains(embed.Title, "Minecraft Server") {
		t.Errorf("title = %q, want generic fallback name", embed.Title)
	}
	if embed.Description != "No MOTD" {
		t.Errorf("description = %q, want placeholder", embed.Description)
	}
	if len(embed.Fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(embed.Fields))
	}
	if embed.Fields[0].Value != "`mc.example.com:25565`" {
		t.Errorf("address field = %q", embed.Fields[0].Value)
	}
	if embed.Fields[1].Value != "0/0" {
		t.Errorf("players field = %q, want 0/0", embed.Fields[1].Value)
	}
	if embed.Fields[2].Value != "Unknown" {
		t.Errorf("version field = %q, want Unknown", embed.Fields[2].Value)
	}
	if embed.Color != colorOffline {
		t.Errorf("color = %#x, want %#x", embed.Color, colorOffline)
	}
}

func TestBuildStatusEmbedOnline(t *testing.T) {
	snap := &status.Snapshot{
		MOTD:          "A Minecraft Server",
		PlayersOnline: 5,
		PlayersMax:    20,
		Version:       "Velocity 1.20.1",
	}
	embed, file := BuildStatusEmbed(snap, "mc.example.com", "Test")
	if file != nil {
		t.Fatal("no favicon was given, expected no attachment")
	}
	if embed.Title != "Test — Online" {
		t.Errorf("title = %q", embed.Title)
	}
	if embed.Description != "A Minecraft Server" {
		t.Errorf("description = %q", embed.Description)
	}
	if embed.Fields[1].Value != "5/20" {
		t.Errorf("players field = %q, want 5/20", embed.Fields[1].Value)
	}
	if embed.Fields[2].Value != "1.20.1" {
		t.Errorf("version field = %q, want brand prefix stripped", embed.Fields[2].Value)
	}
	if embed.Color != colorOnline {
		t.Errorf("color = %#x, want %#x", embed.Color, colorOnline)
	}
	if embed.Timestamp == "" {
		t.Error("timestamp should be set at render time")
	}
}

func TestBuildStatusEmbedInlineFavicon(t *testing.T) {
	// An inline payload longer than any URL bound must still render,
	// via attachment rather than URL.
	raw := make([]byte, 3000)
	for i := range raw {
		raw[i] = byte(i)
	}
	favicon := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)
	if len(favicon) <= maxFaviconURLLength {
		t.Fatalf("test payload too short: %d", len(favicon))
	}

	snap := &status.Snapshot{Favicon: favicon}
	embed, file := BuildStatusEmbed(snap, "mc.example.com", "")
	if file == nil {
		t.Fatal("expected favicon attachment")
	}
	if file.Name != faviconAttachmentName {
		t.Errorf("attachment name = %q", file.Name)
	}
	if embed.Thumbnail == nil || embed.Thumbnail.URL != "attachment://"+faviconAttachmentName {
		t.Errorf("thumbnail = %+v, want attachment reference", embed.Thumbnail)
	}
}

func TestBuildStatusEmbedMalformedFavicon(t *testing.T) {
	snap := &status.Snapshot{Favicon: "data:image/png;base64,!!!not-base64!!!"}
	embed, file := BuildStatusEmbed(snap, "mc.example.com", "")
	if file != nil || embed.Thumbnail != nil {
		t.Error("malformed favicon should degrade to no image")
	}
}

func TestBuildStatusEmbedFaviconURLBound(t *testing.T) {
	long := "https://example.com/" + strings.Repeat("a", maxFaviconURLLength)
	embed, file := BuildStatusEmbed(&status.Snapshot{Favicon: long}, "mc.example.com", "")
	if file != nil || embed.Thumbnail != nil {
		t.Error("overlong favicon URL should be omitted")
	}

	ok := "https://example.com/icon.png"
	embed, file = BuildStatusEmbed(&status.Snapshot{Favicon: ok}, "mc.example.com", "")
	if file != nil {
		t.Error("URL favicon should not produce an attachment")
	}
	if embed.Thumbnail == nil || embed.Thumbnail.URL != ok {
		t.Errorf("thumbnail = %+v, want direct URL", embed.Thumbnail)
	}
}
