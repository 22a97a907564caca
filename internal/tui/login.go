// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sales-admin/internal/service"
)

// loginModel renders the email and password inputs and dispatches an async
// login on submit. The redirect home is driven by the session, not by this
// model.
type loginModel struct {
	ctx      context.Context
	sessions service.SessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	notice     string
	errMsg     string
}

func newLoginModel(ctx context.Context, sessions service.SessionService) loginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{
		ctx:      ctx,
		sessions: sessions,
		inputs:   []textinput.Model{emailInput, passwordInput},
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	if result, ok := msg.(loginDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanize(result.err)
			m.inputs[1].SetValue("")
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab, keys.fieldDown):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab, keys.fieldUp):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			if m.focus == 0 {
				m.focusNext()
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if email == "" || password == "" {
				m.errMsg = "email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Email     │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("Password  │ ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}
	renderStatus(&b, m.notice, m.errMsg)

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: confirm")
}

func (m loginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions

	return func() tea.Msg {
		user, err := sessions.Login(ctx, email, password)
		return loginDoneMsg{user: user, err: err}
	}
}

func (m *loginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *loginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
