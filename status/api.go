package status

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultAPIBaseURL = "https://api.mcsrvstat.us/3/"

// apiResponse covers the subset of the mcsrvstat.us v3 payload the bot
// renders.
type apiResponse struct {
	Online bool `json:"online"`
	Motd   struct {
		Clean []string `json:"clean"`
	} `json:"motd"`
	Players struct {
		Online int `json:"online"`
		Max    int `json:"max"`
	} `json:"players"`
	Version string `json:"version"`
	Icon    string `json:"icon"`
}

// APIClient queries a public status HTTP API instead of the server
// itself, for hosts that block direct pings.
type APIClient struct {
	baseURL string
	client  *http.Client
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &APIClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *APIClient) Fetch(address string) (*Snapshot, error) {
	resp, err := c.client.Get(c.baseURL + address)
	if err != nil {
		return nil, fmt.Errorf("query status api for %s: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status api returned %s for %s", resp.Status, address)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read status api response for %s: %w", address, err)
	}

	var ar apiResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return nil, fmt.Errorf("decode status api response for %s: %w", address, err)
	}
	if !ar.Online {
		return nil, nil
	}

	return &Snapshot{
		MOTD:          strings.Join(ar.Motd.Clean, "\n"),
		PlayersOnline: ar.Players.Online,
		PlayersMax:    ar.Players.Max,
		Version:       ar.Version,
		Favicon:       ar.Icon,
	}, nil
}
