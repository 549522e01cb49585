// Package ui contains the Fyne-based desktop user interface: the navigation
// shell, login/register forms, the owners and cars list pages with their
// search/sort/pagination controls, and the per-record cards. All UI strings
// are localized via Localization.
package ui
