package status

import (
	"encoding/json"
	"fmt"
	"time"

	mcbot "github.com/Tnze/go-mc/bot"
	"github.com/Tnze/go-mc/chat"
	"github.com/rs/zerolog/log"
)

// pingResponse mirrors the server list ping payload. The description
// can be a plain string or a chat object; chat.Message handles both.
type pingResponse struct {
	Version struct {
		Name     string `json:"name"`
		Protocol int    `json:"protocol"`
	} `json:"version"`
	Players struct {
		Max    int `json:"max"`
		Online int `json:"online"`
	} `json:"players"`
	Description chat.Message `json:"description"`
	Favicon     string       `json:"favicon"`
}

// Pinger queries a server directly over the server list ping protocol.
type Pinger struct {
	timeout time.Duration
}

func NewPinger(timeout time.Duration) *Pinger {
	return &Pinger{timeout: timeout}
}

func (p *Pinger) Fetch(address string) (*Snapshot, error) {
	data, delay, err := mcbot.PingAndListTimeout(address, p.timeout)
	if err != nil {
		return nil, fmt.Errorf("ping %s: %w", address, err)
	}

	var resp pingResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode ping response from %s: %w", address, err)
	}
	log.Debug().Str("address", address).Dur("delay", delay).Msg("Server list ping ok")

	return &Snapshot{
		MOTD:          resp.Description.ClearString(),
		PlayersOnline: resp.Players.Online,
		PlayersMax:    resp.Players.Max,
		Version:       resp.Version.Name,
		Favicon:       resp.Favicon,
	}, nil
}
