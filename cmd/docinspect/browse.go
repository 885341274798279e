package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/msdoc/piece"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	storyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type storyInfo struct {
	sd     piece.SubDocument
	length piece.CP
}

type modelState int

const (
	stateSelectStory modelState = iota
	stateShowText
)

type browseModel struct {
	err      error
	sess     *session
	stories  []storyInfo
	view     viewport.Model
	selected int
	state    modelState
	width    int
	height   int
}

func newBrowseModel(s *session) *browseModel {
	m := &browseModel{
		sess:   s,
		view:   viewport.New(80, 20),
		width:  80,
		height: 24,
	}
	sd := s.doc.SubDocuments()
	for _, st := range piece.AllSubDocuments {
		if n := sd.Length(st); n > 0 {
			m.stories = append(m.stories, storyInfo{sd: st, length: n})
		}
	}
	return m
}

func runBrowse(s *session) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("browse needs a terminal; use the text command instead")
	}
	_, err := tea.NewProgram(newBrowseModel(s), tea.WithAltScreen()).Run()
	return err
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-4, 1)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectStory && m.selected > 0 {
				m.selected--
				return m, nil
			}

		case "down", "j":
			if m.state == stateSelectStory && m.selected < len(m.stories)-1 {
				m.selected++
				return m, nil
			}

		case "enter":
			if m.state == stateSelectStory && len(m.stories) > 0 {
				m.openStory()
				return m, nil
			}

		case "esc":
			if m.state == stateShowText {
				m.state = stateSelectStory
				m.err = nil
				return m, nil
			}
		}
	}

	if m.state == stateShowText {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *browseModel) openStory() {
	st := m.stories[m.selected]
	text, err := m.sess.doc.Text(st.sd)
	m.state = stateShowText
	if err != nil {
		m.err = err
		m.sess.log.Warn("story text", zap.Stringer("story", st.sd), zap.Error(err))
		return
	}
	m.view.SetContent(preview(text, m.sess.cfg.Inspect.PreviewChars))
	m.view.GotoTop()
}

func (m *browseModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Word Document"))
	b.WriteString(" ")
	f := m.sess.doc.Fib()
	b.WriteString(fmt.Sprintf("nFib %#04x · %s · %s", f.NFib(), m.sess.doc.Dop().Version, f.Base.TableStream()))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectStory:
		if len(m.stories) == 0 {
			b.WriteString("Document has no text.\n")
		}
		for i, st := range m.stories {
			line := fmt.Sprintf("%-15s %8d CPs", st.sd, st.length)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + storyStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • q quit"))

	case stateShowText:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
		} else {
			b.WriteString(m.view.View())
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}
