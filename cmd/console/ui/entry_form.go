package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type entrySavedMsg struct{ err error }

// EntryFormModel creates a new entry or edits an existing one; editing is
// signalled by a non-empty EntryID.
type EntryFormModel struct {
	Session    *Session
	EntryID    string
	Title      textinput.Model
	Content    textarea.Model
	TitleFocus bool
	Err        error
}

func NewEntryFormModel(s *Session, existing *Entry) EntryFormModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.Prompt = "Title: "
	title.CharLimit = 200
	title.Focus()

	content := textarea.New()
	content.Placeholder = "write something..."

	m := EntryFormModel{Session: s, Title: title, Content: content, TitleFocus: true}
	if existing != nil {
		m.EntryID = existing.ID
		m.Title.SetValue(existing.Title)
		m.Content.SetValue(existing.Content)
	}
	return m
}

func (m EntryFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m EntryFormModel) Update(msg tea.Msg) (EntryFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return backToDashboardMsg{} }
		case tea.KeyTab:
			if m.TitleFocus {
				m.Title.Blur()
				m.Content.Focus()
			} else {
				m.Content.Blur()
				m.Title.Focus()
			}
			m.TitleFocus = !m.TitleFocus
			return m, nil
		case tea.KeyCtrlS:
			return m, m.saveCmd()
		}
	case entrySavedMsg:
		if msg.err != nil {
			m.Err = msg.err
			return m, nil
		}
		return m, func() tea.Msg { return backToDashboardMsg{} }
	}

	var cmd tea.Cmd
	if m.TitleFocus {
		m.Title, cmd = m.Title.Update(msg)
	} else {
		m.Content, cmd = m.Content.Update(msg)
	}
	return m, cmd
}

func (m EntryFormModel) saveCmd() tea.Cmd {
	s := m.Session
	id := m.EntryID
	title := m.Title.Value()
	content := m.Content.Value()
	return func() tea.Msg {
		var err error
		if id == "" {
			_, err = s.CreateEntry(title, content)
		} else {
			_, err = s.UpdateEntry(id, title, content)
		}
		return entrySavedMsg{err: err}
	}
}

func (m EntryFormModel) View() string {
	var b strings.Builder
	header := "New Entry"
	if m.EntryID != "" {
		header = "Edit Entry"
	}
	b.WriteString(titleStyle.Render(header) + "\n\n")
	b.WriteString(m.Title.View() + "\n\n")
	b.WriteString(m.Content.View() + "\n\n")
	b.WriteString(blurredStyle.Render("tab: switch field  ctrl+s: save  esc: cancel"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return contentStyle.Render(b.String())
}
