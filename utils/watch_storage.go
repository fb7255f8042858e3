package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"mcstatus-bot/model"
)

// WatchStore holds the guild -> watch entry mapping backed by a single
// JSON file. Every mutation is written through to disk before it
// returns; a failed write keeps the in-memory state and is only
// logged. Mutations of the same guild from the sync loop and a
// concurrent registration are last-writer-wins.
type WatchStore struct {
	mu      sync.RWMutex
	path    string
	entries map[string]model.WatchEntry
}

// LoadWatchStore reads the watch file at path. A missing file yields
// an empty store; a malformed file is logged and also yields an empty
// store.
func LoadWatchStore(path string) *WatchStore {
	ws := &WatchStore{path: path, entries: make(map[string]model.WatchEntry)}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error().Err(err).Str("file", path).Msg("Failed to read watch config")
		}
		return ws
	}
	if err := json.Unmarshal(data, &ws.entries); err != nil {
		log.Error().Err(err).Str("file", path).Msg("Malformed watch config, starting empty")
		ws.entries = make(map[string]model.WatchEntry)
	}
	return ws
}

// Snapshot returns a copy of the mapping that is safe to iterate while
// other goroutines mutate the store.
func (ws *WatchStore) Snapshot() map[string]model.WatchEntry {
	ws.mu.RLock()
	defer ws.mu.RUnlock()

	out := make(map[string]model.WatchEntry, len(ws.entries))
	for id, entry := range ws.entries {
		out[id] = entry
	}
	return out
}

// Get returns the watch entry for a guild, if any.
func (ws *WatchStore) Get(guildID string) (model.WatchEntry, bool) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()

	entry, ok := ws.entries[guildID]
	return entry, ok
}

// Count returns the number of watched servers.
func (ws *WatchStore) Count() int {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return len(ws.entries)
}

// Register overwrites the watch entry for a guild. Any previously
// stored message id is dropped, so the next publish creates a fresh
// status message.
func (ws *WatchStore) Register(guildID, channelID, serverAddress, name string) model.WatchEntry {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	entry := model.WatchEntry{
		ChannelID:     channelID,
		ServerAddress: serverAddress,
		Name:          name,
	}
	ws.entries[guildID] = entry
	ws.save()
	return entry
}

// SetMessageID records the id of the live status message for a guild.
// Unknown guilds are ignored.
func (ws *WatchStore) SetMessageID(guildID, messageID string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	entry, ok := ws.entries[guildID]
	if !ok {
		return
	}
	entry.MessageID = messageID
	ws.entries[guildID] = entry
	ws.save()
}

// save rewrites the whole mapping. Callers hold ws.mu. The data goes
// to a temp file first so a crash mid-write cannot truncate the
// previous state.
func (ws *WatchStore) save() {
	data, err := json.MarshalIndent(ws.entries, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal watch config")
		return
	}
	if err := os.MkdirAll(filepath.Dir(ws.path), 0755); err != nil {
		log.Error().Err(err).Str("file", ws.path).Msg("Failed to create watch config directory")
		return
	}
	tmp := ws.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		log.Error().Err(err).Str("file", ws.path).Msg("Failed to write watch config")
		return
	}
	if err := os.Rename(tmp, ws.path); err != nil {
		log.Error().Err(err).Str("file", ws.path).Msg("Failed to replace watch config")
	}
}
