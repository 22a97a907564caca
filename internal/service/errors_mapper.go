// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/MKhiriev/sales-admin/internal/adapter"
	"github.com/MKhiriev/sales-admin/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrForbidden, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrConflict):
		if body := extractBody(err); body != "" {
			return fmt.Errorf("%w: %s", ErrRejected, body)
		}
		return fmt.Errorf("%w: %w", ErrRejected, err)
	case errors.Is(err, adapter.ErrBadGateway), isTransportError(err):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// mapLoginError classifies a failed login. Rejected credentials are told
// apart from every other failure.
func mapLoginError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrWrongCredentials, err)
	case errors.Is(err, adapter.ErrBadGateway), isTransportError(err):
		return fmt.Errorf("%w: %w: %w", ErrLoginFailed, ErrServerUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
}

func isTransportError(err error) bool {
	var urlErr *url.Error
	var netErr net.Error
	return errors.As(err, &urlErr) || errors.As(err, &netErr)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return strings.TrimSpace(msg[idx+2:])
	}
	return ""
}

// userFacing lists the errors whose text is shown as is, most specific first.
var userFacing = []error{
	ErrWrongCredentials,
	ErrServerUnavailable,
	ErrLoginFailed,
	ErrSessionExpired,
	ErrSessionNotReady,
	ErrNotLoggedIn,
	ErrStepsPending,
	ErrDraftCommitting,
	ErrNoDraft,
	ErrHasAssociations,
	ErrNotFound,
	ErrForbidden,
	ErrMissingID,
	ErrUnknownStep,
	validators.ErrClientNameRequired,
	validators.ErrFirstNameRequired,
	validators.ErrLastNameRequired,
	validators.ErrAddressRequired,
	validators.ErrCityRequired,
	validators.ErrZipRequired,
	validators.ErrEmailRequired,
	validators.ErrPhoneRequired,
	validators.ErrAgentRequired,
	validators.ErrInvalidCommission,
}

// UserMessage returns the text to show for err. Known errors map to their
// message; a rejection keeps the server's reason; anything else is shown
// verbatim.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, known := range userFacing {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return err.Error()
}
