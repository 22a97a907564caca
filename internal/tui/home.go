package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/sales-admin/internal/service"
	"github.com/MKhiriev/sales-admin/models"
)

type homeAction int

const (
	actionClients homeAction = iota
	actionAgents
	actionResumeClient
	actionResumeAgent
	actionLogout
)

type homeItem struct {
	label  string
	action homeAction
}

// homeModel is the menu shown to a logged-in user.
type homeModel struct {
	ctx      context.Context
	services *service.ClientServices

	user   *models.User
	items  []homeItem
	idx    int
	notice string
}

func newHomeModel(ctx context.Context, services *service.ClientServices) homeModel {
	m := homeModel{ctx: ctx, services: services}
	m.refresh()
	return m
}

// refresh rebuilds the menu, offering to resume unsaved drafts.
func (m *homeModel) refresh() {
	m.user = m.services.Sessions.CurrentUser()
	m.items = []homeItem{
		{label: "Clients", action: actionClients},
		{label: "Agents", action: actionAgents},
	}
	if m.services.ClientDraft.Draft().Active() {
		m.items = append(m.items, homeItem{label: "Resume unsaved client", action: actionResumeClient})
	}
	if m.services.AgentDraft.Draft().Active() {
		m.items = append(m.items, homeItem{label: "Resume unsaved agent", action: actionResumeAgent})
	}
	m.items = append(m.items, homeItem{label: "Log out", action: actionLogout})
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
}

func (m homeModel) Update(msg tea.Msg) (homeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.enter):
		return m, m.choose(m.items[m.idx].action)
	}
	return m, nil
}

func (m homeModel) choose(action homeAction) tea.Cmd {
	switch action {
	case actionClients:
		return navigate(navigateMsg{to: screenList, kind: models.KindClient})
	case actionAgents:
		return navigate(navigateMsg{to: screenList, kind: models.KindAgent})
	case actionResumeClient:
		return navigate(navigateMsg{to: screenWizard, kind: models.KindClient, resume: true})
	case actionResumeAgent:
		return navigate(navigateMsg{to: screenWizard, kind: models.KindAgent, resume: true})
	case actionLogout:
		return m.cmdLogout()
	}
	return nil
}

func (m homeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.Sessions
	return func() tea.Msg {
		sessions.Logout(ctx)
		return logoutDoneMsg{}
	}
}

func (m homeModel) View() string {
	var b strings.Builder
	if m.user != nil {
		b.WriteString("Signed in as ")
		b.WriteString(titleStyle.Render(m.user.DisplayName()))
		b.WriteString("\n\n")
	}

	width := 0
	for _, item := range m.items {
		width = max(width, lipgloss.Width(item.label))
	}
	for i, item := range m.items {
		line := fmt.Sprintf("  %d  %-*s", i+1, width, item.label)
		if i == m.idx {
			line = selectedStyle.Render(fmt.Sprintf("> %d  %-*s", i+1, width, item.label))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	renderStatus(&b, m.notice, "")

	return renderPage("SALES ADMIN", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: move │ l: log out │ v: version │ q: quit")
}

func navigate(msg navigateMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
