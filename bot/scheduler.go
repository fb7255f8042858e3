package bot

import (
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"mcstatus-bot/model"
	"mcstatus-bot/status"
	"mcstatus-bot/utils"
)

// channelAPI is the slice of discordgo.Session the sync loop touches,
// kept narrow so tests can fake it.
type channelAPI interface {
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	utils.MessageSender
}

// Scheduler runs the periodic status sync over all watched servers.
type Scheduler struct {
	bot  *Bot
	done chan struct{}
	wg   sync.WaitGroup
}

func NewScheduler(b *Bot) *Scheduler {
	return &Scheduler{
		bot:  b,
		done: make(chan struct{}),
	}
}

// Start begins the status sync loop.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.runStatusSync()
}

// Stop terminates the loop and waits for an in-flight cycle to finish.
func (s *Scheduler) Stop() {
	close(s.done)
	s.wg.Wait()
}

func (s *Scheduler) runStatusSync() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.bot.Config.UpdateInterval)
	defer ticker.Stop()

	s.syncAll()
	for {
		select {
		case <-ticker.C:
			s.syncAll()
		case <-s.done:
			log.Info().Msg("Status sync loop stopped")
			return
		}
	}
}

// syncAll refreshes the status message of every watched server. The
// iteration runs over a stable copy of the mapping, so registrations
// arriving mid-cycle are picked up next cycle.
func (s *Scheduler) syncAll() {
	entries := s.bot.Watches.Snapshot()
	if len(entries) == 0 {
		return
	}
	log.Debug().Int("watches", len(entries)).Msg("Running status sync cycle")

	for guildID, entry := range entries {
		select {
		case <-s.done:
			return
		default:
		}
		syncEntry(s.bot.Session, s.bot.Source, s.bot.Watches, guildID, entry)
	}
}

// syncEntry refreshes the status message of a single guild. Failures
// are logged and left for the next cycle; they never abort the caller.
func syncEntry(api channelAPI, source status.Source, watches *utils.WatchStore, guildID string, entry model.WatchEntry) {
	if !entry.Valid() {
		log.Warn().Str("guild", guildID).Msg("Skipping watch entry with missing channel or address")
		return
	}

	if _, err := api.Channel(entry.ChannelID); err != nil {
		log.Warn().Err(err).Str("guild", guildID).Str("channel", entry.ChannelID).Msg("Cannot resolve status channel")
		return
	}

	snap, err := source.Fetch(entry.ServerAddress)
	if err != nil {
		log.Debug().Err(err).Str("address", entry.ServerAddress).Msg("Status lookup failed, rendering offline")
		snap = nil
	}

	embed, file := utils.BuildStatusEmbed(snap, entry.ServerAddress, entry.Name)
	newID, err := utils.UpsertStatusMessage(api, entry.ChannelID, entry.MessageID, embed, file)
	if err != nil {
		log.Error().Err(err).Str("guild", guildID).Msg("Failed to update status message")
		return
	}
	if newID != entry.MessageID {
		watches.SetMessageID(guildID, newID)
	}
}
