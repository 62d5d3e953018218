// package formatter exports playlist status reports to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/cristiangauma/bsaver-dl/internal/playlist"
	"github.com/cristiangauma/bsaver-dl/internal/tasks"
)

// ExportToCSV converts reconciliation rows to CSV with columns: #, Song Name, Hash, Status
func ExportToCSV(rows []tasks.SongStatus) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"#", "Song Name", "Hash", "Status"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Index),
			row.Song.DisplayName(),
			row.Song.NormalizedHash(),
			row.Presence.String(),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a playlist and its reconciliation rows to Markdown
func ExportToMarkdown(p *playlist.Playlist, rows []tasks.SongStatus) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", p.DisplayTitle()))
	buf.WriteString(fmt.Sprintf("**Author**: %s\n", p.DisplayAuthor()))
	if p.Description != "" {
		buf.WriteString(fmt.Sprintf("**Description**: %s\n", p.Description))
	}
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(p.Songs)))

	buf.WriteString("## Songs\n\n")
	buf.WriteString("| # | Song Name | Hash | Status |\n")
	buf.WriteString("|---|-----------|------|--------|\n")
	for _, row := range rows {
		buf.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n",
			row.Index, row.Song.DisplayName(), row.Song.NormalizedHash(), row.Presence))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a playlist and its reconciliation rows to plain text
func ExportToText(p *playlist.Playlist, rows []tasks.SongStatus) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", p.DisplayTitle()))
	buf.WriteString(fmt.Sprintf("Author: %s\n", p.DisplayAuthor()))
	if p.Description != "" {
		buf.WriteString(fmt.Sprintf("Description: %s\n", p.Description))
	}
	buf.WriteString(fmt.Sprintf("Songs: %d\n\n", len(p.Songs)))

	for _, row := range rows {
		buf.WriteString(fmt.Sprintf("%d. %s [%s]\n", row.Index, row.Song.DisplayName(), row.Presence))
	}

	return buf.Bytes(), nil
}
