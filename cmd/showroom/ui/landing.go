package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"elite-motors/initialize"
)

type LandingModel struct {
	App    *initialize.App
	Notice string
}

func NewLandingModel(app *initialize.App) LandingModel {
	return LandingModel{App: app}
}

func (m LandingModel) Init() tea.Cmd { return nil }

func (m LandingModel) Update(msg tea.Msg) (LandingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "n":
			return m, navigate(m.App.Pages.Negotiate())
		case "a":
			if !m.App.Consent.Accepted() {
				if err := m.App.Consent.Accept(); err != nil {
					m.Notice = err.Error()
				}
			}
			return m, nil
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m LandingModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Elite Motors") + "\n\n")
	if u := m.App.Session.Get(); u != nil {
		b.WriteString(statusMessageStyle("Bem-vindo de volta, "+u.Name) + "\n\n")
	}
	b.WriteString("Pressione Enter para negociar seu próximo carro.\n")
	b.WriteString(blurredStyle.Render("q para sair") + "\n")

	if !m.App.Consent.Accepted() {
		b.WriteString("\n" + noticeStyle.Render(
			"Usamos armazenamento local para manter sua sessão e propostas.\n"+
				"Pressione 'a' para aceitar.") + "\n")
	}
	if m.Notice != "" {
		b.WriteString("\n" + statusMessageStyle(m.Notice) + "\n")
	}

	return docStyle.Render(b.String())
}
