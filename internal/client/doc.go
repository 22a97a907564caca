// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive dashboard runtime.
//
// It restores unsaved drafts, runs the session expiry and draft autosave
// workers next to the terminal UI, and releases the local store on exit.
package client
