package handlers

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"mcstatus-bot/bot"
	"mcstatus-bot/utils"
)

// SystemInfoHandler reports runtime and host diagnostics.
func SystemInfoHandler(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)
	cpuUsage := 0.0
	if len(cpuPercent) > 0 {
		cpuUsage = cpuPercent[0]
	}

	vm, _ := mem.VirtualMemory()
	hostInfo, _ := host.Info()

	memValue := "n/a"
	if vm != nil {
		memValue = fmt.Sprintf("%.1f%% (%d MB / %d MB)", vm.UsedPercent, vm.Used/1024/1024, vm.Total/1024/1024)
	}
	osValue := "n/a"
	kernelValue := "n/a"
	if hostInfo != nil {
		osValue = fmt.Sprintf("%s %s", hostInfo.Platform, hostInfo.PlatformVersion)
		kernelValue = hostInfo.KernelVersion
	}

	embed := &discordgo.MessageEmbed{
		Title: "Bot Info",
		Color: 0x5865F2, // Discord Blurple
		Fields: []*discordgo.MessageEmbedField{
			{Name: "💻 OS", Value: osValue, Inline: true},
			{Name: "🔧 Kernel", Value: kernelValue, Inline: true},
			{Name: "🐹 Go Version", Value: runtime.Version(), Inline: true},
			{Name: "🔼 CPUs", Value: fmt.Sprintf("%d", cpuCount), Inline: true},
			{Name: "🔥 CPU Usage", Value: fmt.Sprintf("%.1f%%", cpuUsage), Inline: true},
			{Name: "🧠 Memory", Value: memValue, Inline: true},
			{Name: "⏱️ WebSocket Latency", Value: s.HeartbeatLatency().String(), Inline: true},
			{Name: "🚀 Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
			{Name: "📡 Watched Servers", Value: fmt.Sprintf("%d", b.Watches.Count()), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("System monitor · %s", time.Now().Format("15:04")),
		},
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to collect system information")
	}
}
