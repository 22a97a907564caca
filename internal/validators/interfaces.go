// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks that a draft holds every required field before
// it is sent to the backend.
//
// Validate accepts optional field names to restrict the check to one group
// of fields; the group names match the wizard steps ("identity",
// "address", ...), so a single step can be checked on its own.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
