package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type entryDeletedMsg struct{ err error }

type backToDashboardMsg struct{}

type editEntryMsg struct{ entry Entry }

type DetailModel struct {
	Session *Session
	Entry   Entry
	Err     error
}

func NewDetailModel(s *Session, e Entry) DetailModel {
	return DetailModel{Session: s, Entry: e}
}

func (m DetailModel) Init() tea.Cmd { return nil }

func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "e":
			entry := m.Entry
			return m, func() tea.Msg { return editEntryMsg{entry: entry} }
		case "d":
			s, id := m.Session, m.Entry.ID
			return m, func() tea.Msg { return entryDeletedMsg{err: s.DeleteEntry(id)} }
		case "esc", "q":
			return m, func() tea.Msg { return backToDashboardMsg{} }
		}
	case entryDeletedMsg:
		if msg.err != nil {
			m.Err = msg.err
			return m, nil
		}
		return m, func() tea.Msg { return backToDashboardMsg{} }
	}
	return m, nil
}

func (m DetailModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Entry.Title) + "\n\n")
	b.WriteString(blurredStyle.Render("created "+m.Entry.CreatedAt.Format("Jan 02, 2006 15:04")) + "\n\n")
	if m.Entry.Content != "" {
		b.WriteString(m.Entry.Content + "\n")
	} else {
		b.WriteString(blurredStyle.Render("(no content)") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("e: edit  d: delete  esc: back"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return contentStyle.Render(b.String())
}
