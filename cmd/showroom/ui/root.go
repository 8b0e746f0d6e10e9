package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"elite-motors/app/flow"
	"elite-motors/initialize"
)

type state int

const (
	stateLanding state = iota
	stateLogin
	stateRegister
	stateReset
	stateProposal
	stateAdmin
)

type errMsg error

// navigateMsg asks the root model to switch pages.
type navigateMsg struct {
	Route  flow.Route
	Notice string
}

func navigate(route flow.Route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{Route: route} }
}

func navigateNotice(route flow.Route, notice string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{Route: route, Notice: notice} }
}

type RootModel struct {
	App      *initialize.App
	State    state
	Landing  LandingModel
	Login    LoginModel
	Register RegisterModel
	Reset    ResetModel
	Proposal ProposalModel
	Admin    AdminModel
	Quitting bool
	width    int
	height   int
}

func NewRootModel(app *initialize.App) RootModel {
	return RootModel{
		App:     app,
		State:   stateLanding,
		Landing: NewLandingModel(app),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Landing.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if h := msg.Height - 12; h > 3 {
			switch m.State {
			case stateProposal:
				m.Proposal.Vehicles.SetWidth(msg.Width)
				m.Proposal.Vehicles.SetHeight(h)
			case stateAdmin:
				m.Admin.Table.SetHeight(h)
			}
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}

	case navigateMsg:
		return m.enter(msg.Route, msg.Notice)
	}

	switch m.State {
	case stateLanding:
		newPage, cmd := m.Landing.Update(msg)
		m.Landing = newPage
		cmds = append(cmds, cmd)
	case stateLogin:
		newPage, cmd := m.Login.Update(msg)
		m.Login = newPage
		cmds = append(cmds, cmd)
	case stateRegister:
		newPage, cmd := m.Register.Update(msg)
		m.Register = newPage
		cmds = append(cmds, cmd)
	case stateReset:
		newPage, cmd := m.Reset.Update(msg)
		m.Reset = newPage
		cmds = append(cmds, cmd)
	case stateProposal:
		newPage, cmd := m.Proposal.Update(msg)
		m.Proposal = newPage
		cmds = append(cmds, cmd)
	case stateAdmin:
		newPage, cmd := m.Admin.Update(msg)
		m.Admin = newPage
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// enter builds a fresh page model for the route. Protected routes are
// re-checked here so a stale page can never outlive its session.
func (m RootModel) enter(route flow.Route, notice string) (tea.Model, tea.Cmd) {
	switch route {
	case flow.RouteHome:
		m.State = stateLanding
		m.Landing = NewLandingModel(m.App)
		m.Landing.Notice = notice
		return m, m.Landing.Init()

	case flow.RouteLogin:
		m.State = stateLogin
		m.Login = NewLoginModel(m.App)
		m.Login.Notice = notice
		return m, m.Login.Init()

	case flow.RouteRegister:
		m.State = stateRegister
		m.Register = NewRegisterModel(m.App)
		return m, m.Register.Init()

	case flow.RouteReset:
		m.State = stateReset
		m.Reset = NewResetModel(m.App)
		return m, m.Reset.Init()

	case flow.RouteProposal:
		if m.App.Session.Get() == nil {
			return m.enter(flow.RouteLogin, "faça login para enviar uma proposta")
		}
		m.State = stateProposal
		m.Proposal = NewProposalModel(m.App, m.width, m.height)
		return m, m.Proposal.Init()

	case flow.RouteAdmin:
		rows, fallback, err := m.App.Pages.AdminProposals()
		if err != nil {
			return m.enter(fallback, err.Error())
		}
		m.State = stateAdmin
		m.Admin = NewAdminModel(m.App, rows, m.width, m.height)
		return m, m.Admin.Init()
	}
	return m, nil
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Até logo!\n"
	}
	switch m.State {
	case stateLanding:
		return m.Landing.View()
	case stateLogin:
		return m.Login.View()
	case stateRegister:
		return m.Register.View()
	case stateReset:
		return m.Reset.View()
	case stateProposal:
		return m.Proposal.View()
	case stateAdmin:
		return m.Admin.View()
	}
	return ""
}
