package ui

import "testing"

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetCurrentLanguage(); got != "en" {
		t.Errorf("default language = %q, want en", got)
	}

	if got := l.GetText(KeyNavOwners); got != "Owners" {
		t.Errorf("GetText(nav_owners) = %q, want Owners", got)
	}

	// Unknown key falls back to the key itself
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("GetText(no_such_key) = %q, want key echo", got)
	}

	// Unknown language is ignored
	l.SetLanguage("fr")
	if got := l.GetCurrentLanguage(); got != "en" {
		t.Errorf("after SetLanguage(fr): language = %q, want en", got)
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeyNavOwners); got != "Владельцы" {
		t.Errorf("GetText(nav_owners) in ru = %q", got)
	}

	// "system" resolves to a concrete language
	l.SetLanguage("system")
	if got := l.GetCurrentLanguage(); got != "en" {
		t.Errorf("after SetLanguage(system): language = %q, want en", got)
	}
}

func TestLocalizationKeyParity(t *testing.T) {
	l := NewLocalization()

	en := l.texts["en"]
	ru := l.texts["ru"]

	for key := range en {
		if _, ok := ru[key]; !ok {
			t.Errorf("key %q missing in ru", key)
		}
	}
	for key := range ru {
		if _, ok := en[key]; !ok {
			t.Errorf("key %q missing in en", key)
		}
	}
}
