// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"github.com/rs/zerolog"
)

// Static logger getters that map directly to config.yaml log.levels.
// These keep logger names consistent across the codebase.

// GetNavigationLogger returns a logger for the screen stack controller
func GetNavigationLogger() zerolog.Logger {
	return GetLogger("nav")
}

// GetGestureLogger returns a logger for the swipe-back recognizer
func GetGestureLogger() zerolog.Logger {
	return GetLogger("gesture")
}

// GetTransitionLogger returns a logger for enter animations
func GetTransitionLogger() zerolog.Logger {
	return GetLogger("transition")
}

// GetTUILogger returns a logger for TUI components
func GetTUILogger() zerolog.Logger {
	return GetLogger("tui")
}

// GetStorageLogger returns a logger for the local preference store
func GetStorageLogger() zerolog.Logger {
	return GetLogger("storage")
}

// GetBridgeLogger returns a logger for the touch bridge server
func GetBridgeLogger() zerolog.Logger {
	return GetLogger("bridge")
}
