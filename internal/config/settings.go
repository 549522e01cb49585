package config

import (
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL = "server_url"
	KeyLanguage  = "app_language"
)

// Default values
const (
	DefaultServerURL = "http://localhost:8080"
	DefaultLanguage  = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the configured backend base URL
func (s *Settings) GetServerURL() string {
	raw := s.app.Preferences().String(KeyServerURL)
	if raw == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return raw
}

// SetServerURL sets the backend base URL; invalid or empty values fall back
// to the default
func (s *Settings) SetServerURL(raw string) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" {
		raw = DefaultServerURL
	}
	if _, err := url.Parse(raw); err != nil {
		raw = DefaultServerURL
	}
	s.app.Preferences().SetString(KeyServerURL, raw)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
