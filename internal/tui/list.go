package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sales-admin/internal/app"
	"github.com/MKhiriev/sales-admin/internal/service"
	"github.com/MKhiriev/sales-admin/models"
)

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

type listRow struct {
	id     models.ID
	name   string
	email  string
	phone  string
	hidden bool
}

// listModel shows the clients or the agents of the backend.
type listModel struct {
	ctx      context.Context
	kind     models.EntityKind
	entities service.EntityService

	clients []models.Client
	agents  []models.Agent
	rows    []listRow

	idx        int
	showHidden bool
	loading    bool
	confirming bool
	deleting   bool

	notice string
	errMsg string
}

func newListModel(ctx context.Context, kind models.EntityKind, entities service.EntityService) listModel {
	return listModel{
		ctx:      ctx,
		kind:     kind,
		entities: entities,
		loading:  true,
	}
}

func (m listModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		if msg.kind != m.kind || msg.hidden != m.showHidden {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanize(msg.err)
			return m, nil
		}
		m.clients = msg.clients
		m.agents = msg.agents
		m.rebuildRows()
		return m, nil

	case deleteDoneMsg:
		if msg.kind != m.kind {
			return m, nil
		}
		m.deleting = false
		if hasAssociations(msg.err) {
			m.notice = humanize(msg.err)
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = humanize(msg.err)
			return m, nil
		}
		m.clients = models.RemoveByID(m.clients, msg.id)
		m.agents = models.RemoveByID(m.agents, msg.id)
		m.rebuildRows()
		m.notice = app.MsgDeleted
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = app.MsgClipboardFailed
			return m, nil
		}
		m.notice = app.MsgCopied
		return m, nil

	case tea.KeyMsg:
		if m.confirming {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m listModel) updateConfirm(msg tea.KeyMsg) (listModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirming = false
		row, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.deleting = true
		m.notice = ""
		m.errMsg = ""
		return m, m.cmdDelete(row.id)
	case key.Matches(msg, keys.no):
		m.confirming = false
	}
	return m, nil
}

func (m listModel) updateKeys(msg tea.KeyMsg) (listModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(navigateMsg{to: screenHome})
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.hidden):
		m.showHidden = !m.showHidden
		m.loading = true
		m.idx = 0
		m.notice = ""
		m.errMsg = ""
		return m, m.cmdLoad()
	case key.Matches(msg, keys.reload):
		m.loading = true
		m.errMsg = ""
		return m, m.cmdLoad()
	case key.Matches(msg, keys.newItem):
		return m, navigate(navigateMsg{to: screenWizard, kind: m.kind})
	case key.Matches(msg, keys.edit, keys.enter):
		if row, ok := m.selected(); ok {
			return m, navigate(navigateMsg{to: screenWizard, kind: m.kind, id: row.id})
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.selected(); ok && !m.deleting {
			m.confirming = true
		}
	case key.Matches(msg, keys.copy):
		if row, ok := m.selected(); ok {
			return m, cmdCopy(row.id.String())
		}
	case key.Matches(msg, keys.copyEmail):
		if row, ok := m.selected(); ok && row.email != "" {
			return m, cmdCopy(row.email)
		}
	}
	return m, nil
}

func (m listModel) selected() (listRow, bool) {
	if m.idx < 0 || m.idx >= len(m.rows) {
		return listRow{}, false
	}
	return m.rows[m.idx], true
}

func (m *listModel) rebuildRows() {
	m.rows = make([]listRow, 0, len(m.clients)+len(m.agents))
	for _, c := range m.clients {
		m.rows = append(m.rows, listRow{id: c.ID, name: c.DisplayName(), email: c.Email, phone: c.Phone, hidden: c.Hidden})
	}
	for _, a := range m.agents {
		m.rows = append(m.rows, listRow{id: a.ID, name: a.DisplayName(), email: a.Email, phone: a.Phone, hidden: a.Hidden})
	}
	if m.idx >= len(m.rows) {
		m.idx = max(len(m.rows)-1, 0)
	}
}

func (m listModel) cmdLoad() tea.Cmd {
	ctx, kind, hidden, entities := m.ctx, m.kind, m.showHidden, m.entities

	return func() tea.Msg {
		out := listLoadedMsg{kind: kind, hidden: hidden}
		switch kind {
		case models.KindClient:
			out.clients, out.err = entities.ListClients(ctx, hidden)
		case models.KindAgent:
			out.agents, out.err = entities.ListAgents(ctx, hidden)
		default:
			out.err = models.ErrUnknownEntityKind
		}
		return out
	}
}

func (m listModel) cmdDelete(id models.ID) tea.Cmd {
	ctx, kind, entities := m.ctx, m.kind, m.entities

	return func() tea.Msg {
		return deleteDoneMsg{kind: kind, id: id, err: entities.Delete(ctx, kind, id)}
	}
}

func cmdCopy(value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboardWrite(value)}
	}
}

func (m listModel) View() string {
	title := strings.ToUpper(m.kind.Plural())
	if m.showHidden {
		title += " (hidden)"
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.rows) == 0:
		b.WriteString("No " + m.kind.Plural() + ".\n")
	default:
		for i, row := range m.rows {
			line := fmt.Sprintf("%-6s  %-28s  %-28s  %s",
				fitText(row.id.String(), 6),
				fitText(valueOrDash(row.name), 28),
				fitText(valueOrDash(row.email), 28),
				valueOrDash(row.phone),
			)
			switch {
			case i == m.idx:
				line = selectedStyle.Render("> " + line)
			case row.hidden:
				line = hiddenRowStyle.Render("  " + line)
			default:
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	if m.deleting {
		b.WriteString("\nDeleting...\n")
	}
	renderStatus(&b, m.notice, m.errMsg)

	page := renderPage(title, strings.TrimRight(b.String(), "\n"),
		"n: new │ e: edit │ d: delete │ c: copy id │ u: copy email │ h: hidden │ r: reload │ esc: back")

	if m.confirming {
		if row, ok := m.selected(); ok {
			return page + "\n" + confirmModel{message: valueOrDash(row.name)}.View()
		}
	}
	return page
}

// hasAssociations reports whether err is the refusal to delete an entity
// that still has contracts.
func hasAssociations(err error) bool {
	return errors.Is(err, service.ErrHasAssociations)
}
