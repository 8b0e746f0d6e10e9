package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"elite-motors/app/flow"
	"elite-motors/initialize"
)

const (
	loginEmail = iota
	loginPassword
	loginCredential
)

// LoginModel is the login form. The third field accepts a pasted
// Google credential token as an alternative to email/password.
type LoginModel struct {
	App      *initialize.App
	Inputs   []textinput.Model
	FocusIdx int
	Notice   string
	Err      error
}

func NewLoginModel(app *initialize.App) LoginModel {
	inputs := make([]textinput.Model, 3)

	inputs[loginEmail] = textinput.New()
	inputs[loginEmail].Placeholder = "voce@exemplo.com.br"
	inputs[loginEmail].Prompt = "Email: "
	inputs[loginEmail].Focus()

	inputs[loginPassword] = textinput.New()
	inputs[loginPassword].Placeholder = "senha"
	inputs[loginPassword].EchoMode = textinput.EchoPassword
	inputs[loginPassword].Prompt = "Senha: "

	inputs[loginCredential] = textinput.New()
	inputs[loginCredential].Placeholder = "cole o token do Google (opcional)"
	inputs[loginCredential].Prompt = "Google: "
	inputs[loginCredential].CharLimit = 4096

	return LoginModel{App: app, Inputs: inputs}
}

func (m LoginModel) Init() tea.Cmd { return textinput.Blink }

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.FocusIdx == loginCredential && m.Inputs[loginCredential].Value() != "" {
				return m, m.googleCmd()
			}
			if m.FocusIdx >= loginPassword {
				return m, m.loginCmd()
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		case tea.KeyEsc:
			return m, navigate(flow.RouteHome)
		}
		switch msg.String() {
		case "ctrl+n":
			return m, navigate(flow.RouteRegister)
		case "ctrl+r":
			return m, navigate(flow.RouteReset)
		}
	case errMsg:
		m.Err = msg
		return m, nil
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *LoginModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
	m.Inputs[m.FocusIdx].Focus()
}

func (m *LoginModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m LoginModel) loginCmd() tea.Cmd {
	email := strings.TrimSpace(m.Inputs[loginEmail].Value())
	password := m.Inputs[loginPassword].Value()
	return func() tea.Msg {
		route, err := m.App.Pages.Login(email, password)
		if err != nil {
			return errMsg(err)
		}
		return navigateMsg{Route: route}
	}
}

func (m LoginModel) googleCmd() tea.Cmd {
	credential := strings.TrimSpace(m.Inputs[loginCredential].Value())
	return func() tea.Msg {
		route, err := m.App.Pages.GoogleSignIn(credential)
		if err != nil {
			return errMsg(err)
		}
		return navigateMsg{Route: route}
	}
}

func (m LoginModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Elite Motors - Login") + "\n\n")
	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Enter entra · Ctrl+N cadastro · Ctrl+R esqueci a senha · Esc volta"))

	if m.Notice != "" {
		b.WriteString("\n\n" + noticeStyle.Render(m.Notice))
	}
	if m.Err != nil {
		b.WriteString("\n\n" + errorMessageStyle(m.Err.Error()))
	}
	return docStyle.Render(b.String())
}
