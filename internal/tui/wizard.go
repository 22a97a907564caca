// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sales-admin/internal/app"
	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/internal/service"
	"github.com/MKhiriev/sales-admin/internal/validators"
	"github.com/MKhiriev/sales-admin/models"
)

// wizardModel edits one draft across a tab per wizard step. Leaving with esc
// keeps the draft so it can be resumed from the home screen.
type wizardModel struct {
	ctx       context.Context
	kind      models.EntityKind
	drafts    service.DraftService
	entities  service.EntityService
	validator validators.Validator

	steps  []string
	tab    int
	focus  int
	inputs map[string][]textinput.Model

	draft      models.Draft
	applied    map[string]int64
	agents     []models.Agent
	loading    bool
	committing bool

	notice string
	errMsg string
}

func newWizardModel(ctx context.Context, nav navigateMsg, drafts service.DraftService, entities service.EntityService) (wizardModel, tea.Cmd) {
	m := wizardModel{
		ctx:       ctx,
		kind:      nav.kind,
		drafts:    drafts,
		entities:  entities,
		validator: validators.NewEntityValidator(),
		steps:     drafts.Steps(),
		inputs:    make(map[string][]textinput.Model),
		applied:   make(map[string]int64),
		notice:    nav.notice,
	}

	var cmds []tea.Cmd
	switch {
	case nav.resume:
		m.load(drafts.Draft())
		m.notice = app.MsgDraftRestored
	case !nav.id.IsZero():
		m.loading = true
		m.load(models.Draft{Kind: nav.kind, ID: nav.id, Updating: true})
		cmds = append(cmds, m.cmdStartEdit(nav.id))
	default:
		draft, err := drafts.StartCreate(ctx)
		if err != nil {
			m.errMsg = humanize(err)
		}
		m.load(draft)
	}

	if m.kind == models.KindClient {
		cmds = append(cmds, m.cmdLoadAgents())
	}
	cmds = append(cmds, textinput.Blink)
	return m, tea.Batch(cmds...)
}

// load rebuilds every input from draft.
func (m *wizardModel) load(draft models.Draft) {
	m.draft = draft
	m.applied = make(map[string]int64, len(draft.Applied))
	for step, rev := range draft.Applied {
		m.applied[step] = rev
	}

	for _, step := range m.steps {
		defs := fieldsFor(m.kind, step)
		inputs := make([]textinput.Model, len(defs))
		for i, def := range defs {
			inputs[i] = newFieldInput(def, displayValue(def, draft.Fields))
		}
		m.inputs[step] = inputs
	}
	m.focusInput(m.focus)
}

func (m wizardModel) Update(msg tea.Msg) (wizardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case draftStartedMsg:
		m.loading = false
		m.load(msg.draft)
		if msg.err != nil {
			m.errMsg = humanize(msg.err)
		}
		return m, nil

	case agentsLoadedMsg:
		if msg.err == nil {
			m.agents = msg.agents
		}
		return m, nil

	case commitDoneMsg:
		m.committing = false
		if msg.err != nil {
			m.errMsg = humanize(msg.err)
			return m, nil
		}
		return m, navigate(navigateMsg{to: screenList, kind: m.kind, notice: app.MsgSaved})

	case tea.KeyMsg:
		if m.committing {
			return m, nil
		}
		if m.loading && !key.Matches(msg, keys.esc) {
			return m, nil
		}
		return m.updateKeys(msg)
	}

	return m.updateInput(msg)
}

func (m wizardModel) updateKeys(msg tea.KeyMsg) (wizardModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		nav := navigateMsg{to: screenList, kind: m.kind}
		if m.draft.Active() && !m.loading {
			if patch, err := m.patch(m.step()); err == nil {
				if _, err = m.drafts.UpdateField(patch); err != nil {
					logger.FromContext(m.ctx).Warn().Err(err).Str("func", "wizardModel.updateKeys").
						Str("kind", m.kind.String()).Msg("edits of the current step were not kept")
					nav.notice = app.MsgEditsNotKept
				}
			}
		}
		return m, navigate(nav)

	case key.Matches(msg, keys.discard):
		if err := m.drafts.Discard(m.ctx); err != nil {
			m.errMsg = humanize(err)
			return m, nil
		}
		return m, navigate(navigateMsg{to: screenList, kind: m.kind})

	case key.Matches(msg, keys.submit):
		return m.submit()

	case key.Matches(msg, keys.tab):
		if m.applyStep() {
			m.switchTab(m.tab + 1)
		}
		return m, nil

	case key.Matches(msg, keys.backtab):
		if m.applyStep() {
			m.switchTab(m.tab - 1)
		}
		return m, nil

	case key.Matches(msg, keys.fieldUp):
		m.focusInput(m.focus - 1)
		return m, nil

	case key.Matches(msg, keys.fieldDown):
		m.focusInput(m.focus + 1)
		return m, nil

	case key.Matches(msg, keys.enter):
		if m.focus < len(m.inputs[m.step()])-1 {
			m.focusInput(m.focus + 1)
			return m, nil
		}
		if m.tab == len(m.steps)-1 {
			return m.submit()
		}
		if m.applyStep() {
			m.switchTab(m.tab + 1)
		}
		return m, nil
	}

	return m.updateInput(msg)
}

func (m wizardModel) updateInput(msg tea.Msg) (wizardModel, tea.Cmd) {
	inputs := m.inputs[m.step()]
	if m.focus < 0 || m.focus >= len(inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	inputs[m.focus], cmd = inputs[m.focus].Update(msg)
	return m, cmd
}

// submit applies the current step and starts the commit.
func (m wizardModel) submit() (wizardModel, tea.Cmd) {
	if !m.applyStep() {
		return m, nil
	}
	if pending := m.pending(); len(pending) > 0 {
		m.errMsg = app.MsgStepsPending + ": " + strings.Join(pending, ", ")
		return m, nil
	}
	m.committing = true
	m.notice = ""
	m.errMsg = ""
	return m, m.cmdCommit()
}

// applyStep validates the inputs of the current tab and applies them to the
// draft. It reports whether the step was applied.
func (m *wizardModel) applyStep() bool {
	step := m.step()
	patch, err := m.patch(step)
	if err != nil {
		m.errMsg = err.Error()
		return false
	}
	if err = m.validateStep(step, patch); err != nil {
		m.errMsg = humanize(err)
		return false
	}

	confirmation, err := m.drafts.Apply(step, patch)
	if err != nil {
		m.errMsg = humanize(err)
		return false
	}

	m.draft = m.drafts.Draft()
	m.applied[step] = confirmation.Revision
	m.errMsg = ""
	m.notice = fmt.Sprintf("%s saved (revision %d)", step, confirmation.Revision)
	return true
}

func (m wizardModel) validateStep(step string, patch models.Fields) error {
	values := m.draft.Fields.Merge(patch)

	var entity any
	switch m.kind {
	case models.KindAgent:
		var a models.Agent
		if err := values.Decode(&a); err != nil {
			return err
		}
		entity = a
	default:
		var c models.Client
		if err := values.Decode(&c); err != nil {
			return err
		}
		entity = c
	}
	return m.validator.Validate(m.ctx, entity, step)
}

// patch collects the inputs of step into a draft patch.
func (m wizardModel) patch(step string) (models.Fields, error) {
	defs := fieldsFor(m.kind, step)
	inputs := m.inputs[step]

	patch := make(models.Fields, len(defs))
	for i, def := range defs {
		value, err := parseField(def, inputs[i].Value())
		if err != nil {
			return nil, err
		}
		patch[def.key] = value
	}
	return patch, nil
}

func (m wizardModel) pending() []string {
	pending := make([]string, 0, len(m.steps))
	for _, step := range m.steps {
		if _, ok := m.applied[step]; !ok {
			pending = append(pending, step)
		}
	}
	return pending
}

func (m wizardModel) step() string {
	return m.steps[m.tab]
}

func (m *wizardModel) switchTab(tab int) {
	if tab < 0 || tab >= len(m.steps) {
		return
	}
	m.blurAll()
	m.tab = tab
	m.focus = 0
	m.focusInput(0)
}

func (m *wizardModel) focusInput(idx int) {
	inputs := m.inputs[m.step()]
	if len(inputs) == 0 {
		return
	}
	idx = max(0, min(idx, len(inputs)-1))
	m.blurAll()
	m.focus = idx
	inputs[idx].Focus()
}

func (m *wizardModel) blurAll() {
	for _, inputs := range m.inputs {
		for i := range inputs {
			inputs[i].Blur()
		}
	}
}

func (m wizardModel) cmdStartEdit(id models.ID) tea.Cmd {
	ctx, drafts := m.ctx, m.drafts
	return func() tea.Msg {
		draft, err := drafts.StartEdit(ctx, id)
		return draftStartedMsg{draft: draft, err: err}
	}
}

func (m wizardModel) cmdLoadAgents() tea.Cmd {
	ctx, entities := m.ctx, m.entities
	return func() tea.Msg {
		agents, err := entities.ListAgents(ctx, false)
		return agentsLoadedMsg{agents: agents, err: err}
	}
}

func (m wizardModel) cmdCommit() tea.Cmd {
	ctx, kind, drafts := m.ctx, m.kind, m.drafts
	return func() tea.Msg {
		id, err := drafts.Commit(ctx)
		return commitDoneMsg{kind: kind, id: id, err: err}
	}
}

func (m wizardModel) View() string {
	var b strings.Builder

	for i, step := range m.steps {
		label := " " + step + " "
		switch {
		case i == m.tab:
			b.WriteString(activeTabStyle.Render(label))
		case m.applied[step] > 0:
			b.WriteString(appliedTabStyle.Render(label))
		default:
			b.WriteString(tabStyle.Render(label))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n\n")
	}

	defs := fieldsFor(m.kind, m.step())
	inputs := m.inputs[m.step()]
	for i, def := range defs {
		fmt.Fprintf(&b, "%-15s │ %s\n", def.label, inputs[i].View())
	}

	if m.step() == validators.FieldAssignment && len(m.agents) > 0 {
		b.WriteString("\nAgents:\n")
		for _, a := range m.agents {
			fmt.Fprintf(&b, "  %-6s %s\n", fitText(a.ID.String(), 6), a.DisplayName())
		}
	}

	if m.committing {
		b.WriteString("\n" + app.MsgDraftCommitting + "...\n")
	}
	renderStatus(&b, m.notice, m.errMsg)

	action := "NEW "
	if m.draft.Updating {
		action = "EDIT "
	}
	title := action + strings.ToUpper(m.kind.String())
	if m.draft.Updating && !m.draft.ID.IsZero() {
		title += " #" + m.draft.ID.String()
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next step │ ctrl+s: save │ ctrl+x: discard │ esc: keep and leave")
}
