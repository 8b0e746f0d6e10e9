package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"elite-motors/app/services"
	"elite-motors/initialize"
)

// AdminModel lists the proposal ledger, oldest first, with the
// submitter's phone joined in from the directory.
type AdminModel struct {
	App   *initialize.App
	Table table.Model
	Rows  []services.ProposalRow
}

func NewAdminModel(app *initialize.App, rows []services.ProposalRow, width, height int) AdminModel {
	columns := []table.Column{
		{Title: "Data", Width: 20},
		{Title: "Veículo", Width: 12},
		{Title: "Valor", Width: 14},
		{Title: "Email", Width: 26},
		{Title: "Telefone", Width: 16},
		{Title: "Obs", Width: 24},
	}

	h := height - 8
	if h < 5 {
		h = 10
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(h),
	)

	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)

	m := AdminModel{App: app, Table: t}
	m.setRows(rows)
	return m
}

func (m *AdminModel) setRows(rows []services.ProposalRow) {
	m.Rows = rows
	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row{r.CreatedAt, r.Vehicle, r.Value, r.Email, r.Phone, r.Notes})
	}
	m.Table.SetRows(tableRows)
}

func (m AdminModel) Init() tea.Cmd { return nil }

func (m AdminModel) Update(msg tea.Msg) (AdminModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			rows, fallback, err := m.App.Pages.AdminProposals()
			if err != nil {
				return m, navigateNotice(fallback, err.Error())
			}
			m.setRows(rows)
			return m, nil
		case "ctrl+l":
			return m, navigate(m.App.Pages.Logout())
		case "q":
			return m, tea.Quit
		}
	}
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m AdminModel) View() string {
	header := titleStyle.Render("Elite Motors - Propostas recebidas (" + strconv.Itoa(len(m.Rows)) + ")")
	footer := blurredStyle.Render("r atualiza · Ctrl+L sai da conta · q encerra")
	return docStyle.Render(header + "\n\n" + m.Table.View() + "\n" + footer)
}
