package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"elite-motors/app/flow"
	"elite-motors/app/services"
	"elite-motors/initialize"
)

type RegisterModel struct {
	App      *initialize.App
	Inputs   []textinput.Model
	FocusIdx int
	Err      error
}

func NewRegisterModel(app *initialize.App) RegisterModel {
	fields := []struct {
		prompt, placeholder string
		password            bool
	}{
		{"Nome: ", "Nome completo", false},
		{"Email: ", "voce@exemplo.com.br", false},
		{"Telefone: ", "(11) 99999-9999", false},
		{"Nascimento: ", "dd/mm/aaaa", false},
		{"CEP: ", "00000-000", false},
		{"Senha: ", "mínimo 6 caracteres", true},
		{"Confirmar: ", "repita a senha", true},
	}

	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = f.prompt
		ti.Placeholder = f.placeholder
		ti.CharLimit = 128
		if f.password {
			ti.EchoMode = textinput.EchoPassword
		}
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}
	return RegisterModel{App: app, Inputs: inputs}
}

func (m RegisterModel) Init() tea.Cmd { return textinput.Blink }

func (m RegisterModel) Update(msg tea.Msg) (RegisterModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 {
				return m, m.submitCmd()
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
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *RegisterModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
	m.Inputs[m.FocusIdx].Focus()
}

func (m *RegisterModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m RegisterModel) submitCmd() tea.Cmd {
	in := services.RegisterInput{
		Name:            strings.TrimSpace(m.Inputs[0].Value()),
		Email:           strings.TrimSpace(m.Inputs[1].Value()),
		Phone:           strings.TrimSpace(m.Inputs[2].Value()),
		BirthDate:       strings.TrimSpace(m.Inputs[3].Value()),
		PostalCode:      strings.TrimSpace(m.Inputs[4].Value()),
		Password:        m.Inputs[5].Value(),
		ConfirmPassword: m.Inputs[6].Value(),
	}
	return func() tea.Msg {
		route, err := m.App.Pages.Register(in)
		if err != nil {
			return errMsg(err)
		}
		return navigateMsg{Route: route}
	}
}

func (m RegisterModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Elite Motors - Cadastro") + "\n\n")
	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Tab troca de campo · Enter no último campo envia · Esc volta"))

	if m.Err != nil {
		b.WriteString("\n\n" + errorMessageStyle(m.Err.Error()))
	}
	return docStyle.Render(b.String())
}
