// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"koalatype/internal/generator"
	"koalatype/internal/layout"
	"koalatype/internal/model"
	"koalatype/internal/pack"
	"koalatype/internal/score"
	"koalatype/internal/session"
)

const fallbackWidth = 80

var (
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#4FC1A6"))
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	resultBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3)
	resultLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	resultValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// Model implements the Bubble Tea typing UI.
type Model struct {
	cfg    model.Config
	pack   pack.Pack
	prompt generator.Prompt
	sess   *session.Session

	entries   []layout.Entry
	lineCount int

	width  int
	height int

	countdown timer.Model
	hasLimit  bool

	keys resultKeys
	help help.Model

	result *score.Result
}

// NewModel constructs a typing TUI model for an already validated
// config, pack, and initial prompt.
func NewModel(cfg model.Config, p pack.Pack, prompt generator.Prompt) *Model {
	m := &Model{
		cfg:      cfg,
		pack:     p,
		hasLimit: cfg.Duration > 0,
		keys:     defaultResultKeys(),
		help:     help.New(),
	}
	m.startTest(prompt)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sess.Apply(session.Resize())
		m.relayout()
		return m, nil
	case timer.TickMsg, timer.StartStopMsg:
		var cmd tea.Cmd
		m.countdown, cmd = m.countdown.Update(msg)
		return m, cmd
	case timer.TimeoutMsg:
		if msg.ID != m.countdown.ID() {
			return m, nil
		}
		m.sess.Apply(session.Cancel())
		m.captureResult()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.result != nil {
		switch {
		case key.Matches(msg, m.keys.Repeat):
			m.startTest(m.prompt)
			return m, nil
		case key.Matches(msg, m.keys.New):
			m.newPrompt()
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.sess.Apply(session.Cancel())
		if m.sess.State() != session.Finished {
			// Nothing typed yet; there is no partial session to score.
			return m, tea.Quit
		}
		m.captureResult()
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.hasLimit {
			return m, m.countdown.Stop()
		}
		return m, nil
	case tea.KeyBackspace, tea.KeyDelete:
		m.sess.Apply(session.Backspace())
		return m, nil
	case tea.KeySpace:
		return m, m.applyPrintable(' ')
	case tea.KeyRunes:
		var cmds []tea.Cmd
		for _, r := range msg.Runes {
			if cmd := m.applyPrintable(r); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	default:
		return m, nil
	}
}

func (m *Model) applyPrintable(r rune) tea.Cmd {
	before := m.sess.State()
	m.sess.Apply(session.Printable(r))

	var cmds []tea.Cmd
	if m.hasLimit && before == session.NotStarted && m.sess.State() == session.Running {
		cmds = append(cmds, m.countdown.Init())
	}
	if m.sess.State() == session.Finished {
		m.captureResult()
		if m.hasLimit {
			cmds = append(cmds, m.countdown.Stop())
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) captureResult() {
	if m.result != nil {
		return
	}
	res, err := score.FromSession(m.sess)
	if err != nil {
		logErrf("failed to score session: %v\n", err)
		return
	}
	m.result = &res
}

func (m *Model) startTest(prompt generator.Prompt) {
	m.prompt = prompt
	m.sess = session.New(prompt.Text)
	m.result = nil
	if m.hasLimit {
		m.countdown = timer.New(time.Duration(m.cfg.Duration) * time.Second)
	}
	m.relayout()
}

func (m *Model) newPrompt() {
	// A fresh test always draws a new random prompt, seeded run or not.
	prompt, err := generator.Generate(m.pack, m.cfg.Words, nil)
	if err != nil {
		logErrf("failed to generate prompt: %v\n", err)
		return
	}
	m.startTest(prompt)
}

func (m *Model) relayout() {
	m.entries, m.lineCount = layout.Layout(m.prompt.Text, m.contentWidth())
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return fallbackWidth
	}
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.result != nil {
		return m.viewResult()
	}
	return m.viewTyping()
}

func (m *Model) viewTyping() string {
	target := m.sess.Target()
	if len(target) == 0 {
		return ""
	}
	content := renderPrompt(target, m.sess.Statuses(), m.sess.Cursor(), m.entries, m.lineCount)
	if m.width == 0 || m.height == 0 {
		return content
	}
	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) viewResult() string {
	res := *m.result
	rows := []string{
		titleStyle.Render("koalatype results"),
		"",
		resultRow("WPM", fmt.Sprintf("%.1f", res.WPM)),
		resultRow("Accuracy", fmt.Sprintf("%.1f%%", res.Accuracy)),
		resultRow("Characters", fmt.Sprintf("%d/%d correct", res.CorrectChars, res.TotalChars)),
		resultRow("Time", fmt.Sprintf("%.1fs", res.Elapsed.Seconds())),
		"",
		m.help.View(m.keys),
	}
	box := resultBoxStyle.Render(strings.Join(rows, "\n"))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func resultRow(label, value string) string {
	return resultLabelStyle.Render(label+"  ") + resultValueStyle.Render(value)
}

func (m *Model) renderFooter() string {
	target := m.sess.Target()
	if len(target) == 0 {
		return ""
	}
	progress := int(float64(m.sess.Cursor()) / float64(len(target)) * 100)
	segments := []string{fmt.Sprintf("Progress %d%%", progress)}
	if m.hasLimit {
		remaining := m.countdown.Timeout
		if m.sess.State() == session.NotStarted {
			remaining = time.Duration(m.cfg.Duration) * time.Second
		}
		segments = append(segments, fmt.Sprintf("Time left %ds", int(remaining.Seconds()+0.5)))
	}
	if m.sess.State() == session.Running {
		if res, err := score.FromSession(m.sess); err == nil {
			segments = append(segments, fmt.Sprintf("%.1f WPM", res.WPM))
		}
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

// FinalResult returns the last completed score, if any, for printing
// after the program tears down.
func (m *Model) FinalResult() (score.Result, bool) {
	if m.result == nil {
		return score.Result{}, false
	}
	return *m.result, true
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
