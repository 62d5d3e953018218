// Package ui implements terminal output for the downloader: a lipgloss
// palette, the playlist info panel, the song status table, the batch
// summary, and an interactive bubbletea download view.
//
// The TUI [Model] implements bubbletea's standard Init/Update/View pattern.
// Progress updates flow through a channel from the DownloadEngine, providing
// non-blocking status reporting while the batch runs; q or ctrl+c cancels
// the run context and quits.
package ui
