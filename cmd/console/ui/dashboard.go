package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type entriesMsg struct {
	entries []Entry
	err     error
}

type entrySelectedMsg struct{ entry Entry }

type newEntryMsg struct{}

type DashboardModel struct {
	Session *Session
	Table   table.Model
	Entries []Entry
	Err     error
}

func NewDashboardModel(s *Session, height int) DashboardModel {
	columns := []table.Column{
		{Title: "Title", Width: 44},
		{Title: "Created", Width: 20},
	}
	if height < 14 {
		height = 14
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height-10),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return DashboardModel{Session: s, Table: t}
}

func (m DashboardModel) refreshCmd() tea.Cmd {
	s := m.Session
	return func() tea.Msg {
		entries, err := s.ListEntries()
		return entriesMsg{entries: entries, err: err}
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.refreshCmd()
		case "n":
			return m, func() tea.Msg { return newEntryMsg{} }
		case "enter":
			if i := m.Table.Cursor(); i >= 0 && i < len(m.Entries) {
				entry := m.Entries[i]
				return m, func() tea.Msg { return entrySelectedMsg{entry: entry} }
			}
		case "q":
			return m, tea.Quit
		}

	case entriesMsg:
		if msg.err != nil {
			m.Err = msg.err
			return m, nil
		}
		m.Err = nil
		m.Entries = msg.entries
		rows := make([]table.Row, 0, len(msg.entries))
		for _, e := range msg.entries {
			rows = append(rows, table.Row{e.Title, e.CreatedAt.Format("2006-01-02 15:04")})
		}
		m.Table.SetRows(rows)
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Journal - "+m.Session.Username) + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("enter: open  n: new  r: refresh  q: quit"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return contentStyle.Render(b.String())
}
