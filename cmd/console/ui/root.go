package ui

import tea "github.com/charmbracelet/bubbletea"

type state int

const (
	stateLogin state = iota
	stateDashboard
	stateDetail
	stateForm
)

type RootModel struct {
	State     state
	Session   *Session
	Login     LoginModel
	Dashboard DashboardModel
	Detail    DetailModel
	Form      EntryFormModel
	Quitting  bool
	height    int
}

func NewRootModel(serverURL string) RootModel {
	s := NewSession(serverURL)
	return RootModel{
		State:   stateLogin,
		Session: s,
		Login:   NewLoginModel(s),
		height:  24,
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		if m.State == stateDashboard {
			m.Dashboard.Table.SetHeight(msg.Height - 10)
		}
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.State {
	case stateLogin:
		if done, ok := msg.(loginDoneMsg); ok && done.err == nil {
			m.State = stateDashboard
			m.Dashboard = NewDashboardModel(m.Session, m.height)
			return m, m.Dashboard.Init()
		}
		m.Login, cmd = m.Login.Update(msg)

	case stateDashboard:
		switch msg := msg.(type) {
		case entrySelectedMsg:
			m.State = stateDetail
			m.Detail = NewDetailModel(m.Session, msg.entry)
			return m, m.Detail.Init()
		case newEntryMsg:
			m.State = stateForm
			m.Form = NewEntryFormModel(m.Session, nil)
			return m, m.Form.Init()
		}
		m.Dashboard, cmd = m.Dashboard.Update(msg)

	case stateDetail:
		switch msg := msg.(type) {
		case editEntryMsg:
			m.State = stateForm
			m.Form = NewEntryFormModel(m.Session, &msg.entry)
			return m, m.Form.Init()
		case backToDashboardMsg:
			m.State = stateDashboard
			return m, m.Dashboard.refreshCmd()
		}
		m.Detail, cmd = m.Detail.Update(msg)

	case stateForm:
		if _, ok := msg.(backToDashboardMsg); ok {
			m.State = stateDashboard
			return m, m.Dashboard.refreshCmd()
		}
		m.Form, cmd = m.Form.Update(msg)
	}

	return m, cmd
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateDashboard:
		return m.Dashboard.View()
	case stateDetail:
		return m.Detail.View()
	case stateForm:
		return m.Form.View()
	}
	return ""
}
