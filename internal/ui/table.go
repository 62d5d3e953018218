package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cristiangauma/bsaver-dl/internal/playlist"
	"github.com/cristiangauma/bsaver-dl/internal/tasks"
	"github.com/dustin/go-humanize"
)

var panelBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// RenderPlaylistInfo renders a bordered panel with playlist metadata.
func RenderPlaylistInfo(p *playlist.Playlist) string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Playlist Information"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Title:  %s\n", p.DisplayTitle()))
	b.WriteString(fmt.Sprintf("Author: %s\n", p.DisplayAuthor()))
	if p.Description != "" {
		desc := p.Description
		if len(desc) > 100 {
			desc = desc[:100] + "..."
		}
		b.WriteString(fmt.Sprintf("Description: %s\n", desc))
	}
	b.WriteString(fmt.Sprintf("Songs:  %d", len(p.Songs)))

	return panelBorder.Render(b.String())
}

// StatusCell returns the styled status text for a reconciliation row.
func StatusCell(p tasks.Presence) string {
	switch p {
	case tasks.PresencePresent:
		return styles.ok.Render("✅ Present")
	case tasks.PresenceMissing:
		return styles.warn.Render("⬇️ Missing")
	case tasks.PresenceNoHash:
		return styles.err.Render("❌ No Hash")
	default:
		return ""
	}
}

// TruncateHash shortens a hash for table display.
func TruncateHash(hash string) string {
	if len(hash) > 15 {
		return hash[:12] + "..."
	}
	return hash
}

// RenderStatusTable renders the song reconciliation table.
func RenderStatusTable(rows []tasks.SongStatus) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Song Name", "Hash", "Status").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.title.Margin(0).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, row := range rows {
		t.Row(
			strconv.Itoa(row.Index),
			row.Song.DisplayName(),
			TruncateHash(row.Song.NormalizedHash()),
			StatusCell(row.Presence),
		)
	}

	return t.Render()
}

// RenderSummary renders the final batch summary panel.
func RenderSummary(result *tasks.DownloadResult) string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Download Summary"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d\n", styles.ok.Render("✅ Successful:"), result.Successful))
	b.WriteString(fmt.Sprintf("%s %d\n", styles.err.Render("❌ Failed:"), result.Failed))
	if result.Skipped > 0 {
		b.WriteString(fmt.Sprintf("%s %d\n", styles.warn.Render("⏭  Skipped (no hash):"), result.Skipped))
	}
	b.WriteString(fmt.Sprintf("📁 Total Songs: %d", result.Total))
	if result.BytesWritten > 0 {
		b.WriteString(fmt.Sprintf("\n⬇️  Fetched: %s", humanize.Bytes(uint64(result.BytesWritten))))
	}

	return panelBorder.Render(b.String())
}
