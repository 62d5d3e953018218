package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristiangauma/bsaver-dl/internal/playlist"
	"github.com/cristiangauma/bsaver-dl/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	DownloadView ViewState = iota
	ResultView
)

type progressUpdateMsg tasks.ProgressUpdate

type runCompleteMsg struct {
	result *tasks.DownloadResult
	err    error
}

// Model represents the download TUI state.
type Model struct {
	ctx          context.Context
	cancel       context.CancelFunc
	view         ViewState
	engine       *tasks.DownloadEngine
	pl           *playlist.Playlist
	playlistPath string
	destDir      string
	opts         tasks.RunOpts
	progressCh   chan tasks.ProgressUpdate
	bar          progress.Model
	message      string
	step         int
	total        int
	result       *tasks.DownloadResult
	err          error
	width        int
	height       int
	help         help.Model
	keys         keyMap
}

// NewModel creates a download TUI model. The engine run is cancelled through cancel when the user quits early.
func NewModel(ctx context.Context, cancel context.CancelFunc, engine *tasks.DownloadEngine, pl *playlist.Playlist, playlistPath, destDir string, opts tasks.RunOpts) *Model {
	return &Model{
		ctx:          ctx,
		cancel:       cancel,
		view:         DownloadView,
		engine:       engine,
		pl:           pl,
		playlistPath: playlistPath,
		destDir:      destDir,
		opts:         opts,
		progressCh:   make(chan tasks.ProgressUpdate, 64),
		bar:          progress.New(progress.WithDefaultGradient()),
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// Init starts the batch run and begins consuming progress updates.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startRun(), m.waitForUpdate())
}

// startRun executes the engine in the background and reports completion.
func (m *Model) startRun() tea.Cmd {
	return func() tea.Msg {
		result, err := m.engine.Run(m.ctx, m.progressCh, m.pl, m.playlistPath, m.destDir, m.opts)
		close(m.progressCh)
		return runCompleteMsg{result: result, err: err}
	}
}

// waitForUpdate blocks on the progress channel and relays the next update.
func (m *Model) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		update, ok := <-m.progressCh
		if !ok {
			return nil
		}
		return progressUpdateMsg(update)
	}
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = msg.Width - 8
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			m.cancel()
			return m, tea.Quit
		}
		return m, nil

	case progressUpdateMsg:
		update := tasks.ProgressUpdate(msg)
		if update.Phase == tasks.Download {
			m.step = update.Step
			m.total = update.Total
		}
		m.message = update.Message
		return m, m.waitForUpdate()

	case runCompleteMsg:
		m.result = msg.result
		m.err = msg.err
		m.view = ResultView
		return m, nil
	}

	return m, nil
}

// View renders the current view.
func (m *Model) View() string {
	switch m.view {
	case ResultView:
		return m.resultView()
	default:
		return m.downloadView()
	}
}

func (m *Model) downloadView() string {
	var b strings.Builder

	b.WriteString(styles.title.Render(fmt.Sprintf("Downloading: %s", m.pl.DisplayTitle())))
	b.WriteString("\n\n")

	percent := 0.0
	if m.total > 0 {
		percent = float64(m.step) / float64(m.total)
	}
	b.WriteString(m.bar.ViewAs(percent))
	b.WriteString("\n\n")

	if m.message != "" {
		b.WriteString(m.message)
		b.WriteString("\n")
	}
	if m.total > 0 {
		b.WriteString(styles.help.Render(fmt.Sprintf("%d/%d songs", m.step, m.total)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) resultView() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(styles.err.Render(fmt.Sprintf("Download aborted: %v", m.err)))
		b.WriteString("\n\n")
	} else if m.result != nil {
		b.WriteString(RenderSummary(m.result))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))

	return b.String()
}
