package discord

import (
	"fmt"
	"strings"

	"github.com/SamSam-01/Gamebrary/internal/models"
	"github.com/SamSam-01/Gamebrary/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorSuccess = 0x00ff00
	colorError   = 0xff0000
	colorInfo    = 0x3498db
)

// Discord rejects embed field values over this length
const maxFieldLength = 1024

var medals = map[int]string{1: "🥇", 2: "🥈", 3: "🥉"}

// renderImportEmbed renders the outcome of a single import
func renderImportEmbed(msg *messaging.GetImportMessageOutput) *discordgo.MessageEmbed {
	color := colorSuccess
	if !msg.Success {
		color = colorError
	}

	return &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       color,
		Footer:      flavorFooter(msg.Flavor),
	}
}

// renderBulkImportEmbed renders the outcome of a CSV import
func renderBulkImportEmbed(msg *messaging.GetBulkImportMessageOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Summary,
		Color:       colorSuccess,
		Footer:      flavorFooter(msg.Flavor),
	}

	if len(msg.Failures) > 0 {
		embed.Color = colorError
		embed.Fields = []*discordgo.MessageEmbedField{
			{
				Name:  "Failed rows",
				Value: truncate(strings.Join(msg.Failures, "\n"), maxFieldLength),
			},
		}
	}
	return embed
}

// renderStandingsEmbed renders a session's standings
func renderStandingsEmbed(standings *models.Standings) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(standings.Entries))
	for _, entry := range standings.Entries {
		place := "-"
		if entry.Position > 0 {
			place = fmt.Sprintf("%d.", entry.Position)
			if medal, ok := medals[entry.Position]; ok {
				place = medal
			}
		}
		lines = append(lines, fmt.Sprintf("%s **%s** %s", place, entry.Name, entry.Score.String()))
	}

	description := strings.Join(lines, "\n")
	if description == "" {
		description = "No players yet."
	}

	status := "In progress"
	if standings.Ended {
		status = "Final"
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Standings: %s", standings.GameTitle),
		Description: description,
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Status",
				Value:  status,
				Inline: true,
			},
			{
				Name:   "Players",
				Value:  fmt.Sprintf("%d", len(standings.Entries)),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Session " + standings.SessionID},
	}
}

// standingsComponents returns the refresh button for a standings message
func standingsComponents(sessionID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Refresh",
					Style:    discordgo.SecondaryButton,
					CustomID: ButtonRefreshStandings + sessionID,
					Emoji: &discordgo.ComponentEmoji{
						Name: "🔄",
					},
				},
			},
		},
	}
}

func flavorFooter(flavor string) *discordgo.MessageEmbedFooter {
	if flavor == "" {
		return nil
	}
	return &discordgo.MessageEmbedFooter{Text: flavor}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
