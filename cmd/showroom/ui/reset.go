package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"elite-motors/app/flow"
	"elite-motors/initialize"
)

type resetStep int

const (
	stepRequestEmail resetStep = iota
	stepNewPassword
)

// resetDoneMsg fires after the post-reset display delay.
type resetDoneMsg struct{}

// ResetModel drives the two-step password reset: confirm the email,
// then set the new password. On success the console shows the notice
// for the configured delay before returning to login.
type ResetModel struct {
	App      *initialize.App
	Step     resetStep
	Inputs   []textinput.Model
	FocusIdx int
	Done     bool
	Err      error
}

func NewResetModel(app *initialize.App) ResetModel {
	m := ResetModel{App: app, Step: stepRequestEmail}
	m.initInputs()
	return m
}

func (m *ResetModel) initInputs() {
	if m.Step == stepRequestEmail {
		ti := textinput.New()
		ti.Prompt = "Email: "
		ti.Placeholder = "email cadastrado"
		ti.Focus()
		m.Inputs = []textinput.Model{ti}
	} else {
		newPass := textinput.New()
		newPass.Prompt = "Nova senha: "
		newPass.Placeholder = "mínimo 6 caracteres"
		newPass.EchoMode = textinput.EchoPassword
		newPass.Focus()

		confirm := textinput.New()
		confirm.Prompt = "Confirmar: "
		confirm.Placeholder = "repita a nova senha"
		confirm.EchoMode = textinput.EchoPassword

		m.Inputs = []textinput.Model{newPass, confirm}
	}
	m.FocusIdx = 0
}

func (m ResetModel) Init() tea.Cmd { return textinput.Blink }

func (m ResetModel) Update(msg tea.Msg) (ResetModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Done {
			return m, nil
		}
		switch msg.Type {
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 {
				cmd := m.submit()
				return m, cmd
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		case tea.KeyEsc:
			return m, navigate(flow.RouteLogin)
		}
	case errMsg:
		m.Err = msg
		return m, nil
	case resetDoneMsg:
		return m, navigate(flow.RouteLogin)
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *ResetModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
	m.Inputs[m.FocusIdx].Focus()
}

func (m *ResetModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m *ResetModel) submit() tea.Cmd {
	if m.Step == stepRequestEmail {
		email := strings.TrimSpace(m.Inputs[0].Value())
		if err := m.App.Pages.RequestPasswordReset(email); err != nil {
			m.Err = err
			return nil
		}
		m.Err = nil
		m.Step = stepNewPassword
		m.initInputs()
		return textinput.Blink
	}

	_, err := m.App.Pages.ConfirmPasswordReset(m.Inputs[0].Value(), m.Inputs[1].Value())
	if err != nil {
		m.Err = err
		return nil
	}
	m.Err = nil
	m.Done = true
	delay := m.App.Cfg.UI.RedirectDelay
	return tea.Tick(delay, func(time.Time) tea.Msg { return resetDoneMsg{} })
}

func (m ResetModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Elite Motors - Redefinir senha") + "\n\n")

	if m.Done {
		b.WriteString(statusMessageStyle("Senha redefinida! Voltando para o login...") + "\n")
		return docStyle.Render(b.String())
	}

	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Enter confirma · Esc volta para o login"))

	if m.Err != nil {
		b.WriteString("\n\n" + errorMessageStyle(m.Err.Error()))
	}
	return docStyle.Render(b.String())
}
