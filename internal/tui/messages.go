package tui

import (
	"github.com/MKhiriev/sales-admin/models"
)

type screen int

const (
	screenLoading screen = iota
	screenLogin
	screenHome
	screenList
	screenWizard
)

// sessionMsg carries a session snapshot from the subscription. ok is false
// once the subscription is closed.
type sessionMsg struct {
	session models.Session
	ok      bool
}

// sessionEndedMsg is sent when the backend or the expiry watch ended the
// session.
type sessionEndedMsg struct{}

type bootstrapDoneMsg struct {
	err error
}

// navigateMsg moves the dashboard to another screen.
type navigateMsg struct {
	to     screen
	kind   models.EntityKind
	id     models.ID
	resume bool
	notice string
}

type loginDoneMsg struct {
	user models.User
	err  error
}

type logoutDoneMsg struct{}

type listLoadedMsg struct {
	kind    models.EntityKind
	hidden  bool
	clients []models.Client
	agents  []models.Agent
	err     error
}

type deleteDoneMsg struct {
	kind models.EntityKind
	id   models.ID
	err  error
}

type copiedMsg struct {
	err error
}

type draftStartedMsg struct {
	draft models.Draft
	err   error
}

type agentsLoadedMsg struct {
	agents []models.Agent
	err    error
}

type commitDoneMsg struct {
	kind models.EntityKind
	id   models.ID
	err  error
}
