package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconCars     = "🚗"
	IconOwners   = "👤"
	IconSearch   = "🔍"
	IconExport   = "⬇️"
	IconAdd      = "➕"
	IconDelete   = "🗑"
	IconEdit     = "✏"
	IconSettings = "⚙"
	IconAsc      = "⬆️"
	IconDesc     = "⬇️"
)

// Text fragments
const (
	DashPlaceholder = "—"
	PageLabelFormat = "Page %d / %d"
)

// Layout sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 640

	FormMinWidth  float32 = 360
	CardMinHeight float32 = 72
)

// Delays
const (
	// RegisterRedirectDelay mirrors the short pause between the success
	// message and the switch to the login view.
	RegisterRedirectDelay = 1500 * time.Millisecond
)
