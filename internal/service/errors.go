package service

import (
	"errors"

	"github.com/MKhiriev/sales-admin/internal/app"
)

// Session errors.
var (
	ErrSessionNotReady   = errors.New(app.MsgSessionStillLoading)
	ErrWrongCredentials  = errors.New(app.MsgWrongCredentials)
	ErrLoginFailed       = errors.New(app.MsgLoginFailed)
	ErrSessionExpired    = errors.New(app.MsgSessionExpired)
	ErrNotLoggedIn       = errors.New(app.MsgNotLoggedIn)
	ErrServerUnavailable = errors.New(app.MsgServerUnavailable)
)

// Draft errors.
var (
	ErrNoDraft         = errors.New(app.MsgNoDraft)
	ErrDraftCommitting = errors.New(app.MsgDraftCommitting)
	ErrStepsPending    = errors.New(app.MsgStepsPending)
	ErrUnknownStep     = errors.New(app.MsgUnknownStep)
	ErrMissingID       = errors.New(app.MsgMissingID)
	ErrInvalidDraft    = errors.New("draft fields have invalid types")
)

// Entity errors.
var (
	ErrNotFound        = errors.New(app.MsgNotFound)
	ErrForbidden       = errors.New(app.MsgForbidden)
	ErrRejected        = errors.New(app.MsgRejected)
	ErrHasAssociations = errors.New(app.MsgHasAssociations)
)
