package main

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/pkg/errors"

	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/conversation"
	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/session"
)

type responseMsg string

type completionErrMsg struct {
	err error
}

type model struct {
	session *session.Session

	textArea textarea.Model
	// waiting is true while a completion call is in flight; submissions are
	// ignored until it returns
	waiting bool
	err     error
	keyMap  KeyMap

	style  *Style
	width  int
	height int
}

func initialModel(s *session.Session) model {
	ret := model{
		session: s,
		style:   DefaultStyles(),
		keyMap:  DefaultKeyMap,
	}

	ret.textArea = textarea.New()
	ret.textArea.Placeholder = "What would you like to learn about?"
	ret.textArea.SetHeight(3)
	ret.textArea.Focus()

	return ret
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func submitMessage(s *session.Session, text string) tea.Cmd {
	return func() tea.Msg {
		response, err := s.SubmitUserMessage(context.Background(), text)
		if err != nil {
			return completionErrMsg{err: err}
		}
		return responseMsg(response)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keyMap.NewAdventure):
			if !m.waiting {
				m.session.Reset()
				m.err = nil
			}

		case key.Matches(msg, m.keyMap.CancelCompletion):
			if m.waiting {
				_ = m.session.CancelCompletion()
			}

		case key.Matches(msg, m.keyMap.SubmitMessage):
			text := m.textArea.Value()
			if !m.waiting && text != "" {
				m.waiting = true
				m.err = nil
				m.textArea.Reset()
				cmds = append(cmds, submitMessage(m.session, text))
			}

		default:
			m.textArea, cmd = m.textArea.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		h, _ := m.style.Input.GetFrameSize()
		m.textArea.SetWidth(msg.Width - h)
		m.width = msg.Width
		m.height = msg.Height

	case responseMsg:
		m.waiting = false

	case completionErrMsg:
		m.waiting = false
		if errors.Is(msg.err, session.ErrCompletionInFlight) {
			// the session already serializes submissions; nothing to show
			break
		}
		m.err = msg.err

	default:
	}

	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	ret := m.style.Title.Render("Educational Adventure Bot 🎓")
	ret += "\n"

	for _, msg := range m.session.GetDisplayConversation() {
		style := m.style.AssistantMessage
		if msg.Role == conversation.RoleUser {
			style = m.style.UserMessage
		}

		w, _ := style.GetFrameSize()
		text := msg.Text
		if m.width > w {
			text = wordwrap.String(text, m.width-w)
		}
		ret += style.Render(text)
		ret += "\n"
	}

	if m.waiting {
		ret += m.style.Waiting.Render("waiting for the story to continue...")
		ret += "\n"
	}

	if m.err != nil {
		ret += m.style.ErrorLine.Render("An error occurred: " + m.err.Error())
		ret += "\n"
	}

	ret += m.style.Input.Render(m.textArea.View())
	ret += "\n"
	ret += m.style.Help.Render("enter: send • ctrl+r: new adventure • ctrl+g: cancel • ctrl+c: quit")
	ret += "\n"

	return ret
}
