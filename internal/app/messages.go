// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// services, the terminal dashboard and salesctl.
package app

// Validation messages shown when a draft cannot be committed.
const (
	MsgClientNameRequired = "enter first and last name, or a company name"
	MsgFirstNameRequired  = "first name is required"
	MsgLastNameRequired   = "last name is required"
	MsgAddressRequired    = "address is required"
	MsgCityRequired       = "city is required"
	MsgZipRequired        = "ZIP code is required"
	MsgEmailRequired      = "email is required"
	MsgPhoneRequired      = "phone is required"
	MsgAgentRequired      = "an agent must be assigned"
	MsgInvalidCommission  = "commission must be between 0 and 100"
)

// Session messages.
const (
	MsgWrongCredentials    = "wrong email or password"
	MsgLoginFailed         = "login failed, try again later"
	MsgSessionExpired      = "your session has expired, please log in again"
	MsgLoggedOut           = "logged out"
	MsgNotLoggedIn         = "not logged in"
	MsgCheckingSession     = "checking session..."
	MsgServerUnavailable   = "server is unavailable, check the address and your connection"
	MsgSessionStillLoading = "session is still loading"
	MsgForbidden           = "you are not allowed to do this"
)

// Draft and entity messages.
const (
	MsgStepsPending    = "complete every step before saving"
	MsgDraftCommitting = "saving in progress"
	MsgNoDraft         = "nothing to save"
	MsgSaved           = "saved"
	MsgHasAssociations = "cannot delete: it still has associated contracts"
	MsgDeleted         = "deleted"
	MsgNotFound        = "not found"
	MsgCopied          = "copied to clipboard"
	MsgClipboardFailed = "clipboard is not available"
	MsgDraftRestored   = "restored unsaved changes"
	MsgEditsNotKept    = "last changes were not kept"
	MsgRejected        = "the server rejected the request"
	MsgUnknownStep     = "unknown wizard step"
	MsgMissingID       = "an id is required"
)
