package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sales-admin/internal/app"
)

// loadingModel is shown while the session is not initialized. Nothing
// protected is rendered behind it.
type loadingModel struct {
	spinner spinner.Model
}

func newLoadingModel() loadingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return loadingModel{spinner: s}
}

func (m loadingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m loadingModel) Update(msg tea.Msg) (loadingModel, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m loadingModel) View() string {
	return renderPage("SALES ADMIN", m.spinner.View()+" "+app.MsgCheckingSession, "")
}
