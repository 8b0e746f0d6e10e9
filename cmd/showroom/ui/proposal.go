package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"elite-motors/app/flow"
	"elite-motors/initialize"
)

type vehicleItem struct {
	name, desc string
}

func (i vehicleItem) Title() string       { return i.name }
func (i vehicleItem) Description() string { return i.desc }
func (i vehicleItem) FilterValue() string { return i.name }

var showroomVehicles = []vehicleItem{
	{name: "Elite", desc: "Sedã executivo, motor 2.0 turbo"},
	{name: "Vision", desc: "SUV compacto, câmbio automático"},
	{name: "Tracker GT", desc: "Esportivo, teto solar panorâmico"},
	{name: "Urban", desc: "Hatch de entrada, baixo consumo"},
}

type proposalStage int

const (
	stageSelectVehicle proposalStage = iota
	stageFillOffer
)

const (
	offerValue = iota
	offerNotes
)

// ProposalModel is a two-stage form: pick a vehicle, then name your
// price and optional notes.
type ProposalModel struct {
	App      *initialize.App
	Stage    proposalStage
	Vehicles list.Model
	Inputs   []textinput.Model
	FocusIdx int
	Vehicle  string
	Err      error
}

func NewProposalModel(app *initialize.App, width, height int) ProposalModel {
	items := make([]list.Item, len(showroomVehicles))
	for i, v := range showroomVehicles {
		items[i] = v
	}
	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Escolha o veículo"
	l.SetShowHelp(false)
	if width == 0 {
		l.SetWidth(60)
	}
	if height == 0 {
		l.SetHeight(14)
	}

	inputs := make([]textinput.Model, 2)
	inputs[offerValue] = textinput.New()
	inputs[offerValue].Prompt = "Valor proposto (R$): "
	inputs[offerValue].Placeholder = "25000.50"
	inputs[offerValue].Focus()

	inputs[offerNotes] = textinput.New()
	inputs[offerNotes].Prompt = "Observações: "
	inputs[offerNotes].Placeholder = "condições, troca, prazo..."
	inputs[offerNotes].CharLimit = 512

	return ProposalModel{App: app, Stage: stageSelectVehicle, Vehicles: l, Inputs: inputs}
}

func (m ProposalModel) Init() tea.Cmd { return nil }

func (m ProposalModel) Update(msg tea.Msg) (ProposalModel, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	if m.Stage == stageSelectVehicle {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "enter":
				if it, ok := m.Vehicles.SelectedItem().(vehicleItem); ok {
					m.Vehicle = it.name
					m.Stage = stageFillOffer
					return m, textinput.Blink
				}
			case "ctrl+l":
				return m, navigate(m.App.Pages.Logout())
			case "esc":
				return m, navigate(flow.RouteHome)
			}
		}
		m.Vehicles, cmd = m.Vehicles.Update(msg)
		return m, cmd
	}

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
			m.Stage = stageSelectVehicle
			m.Err = nil
			return m, nil
		}
	case errMsg:
		m.Err = msg
		return m, nil
	}

	for i := range m.Inputs {
		m.Inputs[i], cmd = m.Inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *ProposalModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
	m.Inputs[m.FocusIdx].Focus()
}

func (m *ProposalModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m ProposalModel) submitCmd() tea.Cmd {
	vehicle := m.Vehicle
	value := m.Inputs[offerValue].Value()
	notes := m.Inputs[offerNotes].Value()
	return func() tea.Msg {
		route, err := m.App.Pages.SubmitProposal(vehicle, value, notes)
		if err != nil {
			return errMsg(err)
		}
		return navigateMsg{Route: route, Notice: "Proposta enviada! Entraremos em contato."}
	}
}

func (m ProposalModel) View() string {
	if m.Stage == stageSelectVehicle {
		footer := blurredStyle.Render("Enter seleciona · Ctrl+L sai da conta · Esc volta")
		return m.Vehicles.View() + "\n" + footer
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Proposta - "+m.Vehicle) + "\n\n")
	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Enter no último campo envia · Esc volta para os veículos"))

	if m.Err != nil {
		b.WriteString("\n\n" + errorMessageStyle(m.Err.Error()))
	}
	return docStyle.Render(b.String())
}
