// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/sales-admin/internal/service"
)

// ErrUserQuit is returned by Run when the user closed the dashboard.
var ErrUserQuit = errors.New("user quit")

// humanize returns the message shown for err.
func humanize(err error) string {
	return service.UserMessage(err)
}
