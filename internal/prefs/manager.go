package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/sorteio/api/internal/db"
)

// Theme is the color scheme a client renders with.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Language is the locale a client renders with.
type Language string

const (
	LanguagePortuguese Language = "pt"
	LanguageEnglish    Language = "en"
)

const (
	themeKey    = "theme"
	languageKey = "language"
)

var (
	ErrInvalidTheme    = errors.New("theme must be light or dark")
	ErrInvalidLanguage = errors.New("language must be pt or en")
)

// Preferences is the full set of stored preferences.
type Preferences struct {
	Theme    Theme    `json:"theme"`
	Language Language `json:"language"`
}

// Manager reads and writes preferences as key-value rows.
type Manager struct {
	queries *db.LoggingQueries
}

func NewManager(database *sql.DB) *Manager {
	return &Manager{
		queries: db.NewLoggingQueries(database),
	}
}

// Get returns every preference, falling back to defaults for missing rows.
func (m *Manager) Get(ctx context.Context) (*Preferences, error) {
	theme, err := m.Theme(ctx)
	if err != nil {
		return nil, err
	}
	language, err := m.Language(ctx)
	if err != nil {
		return nil, err
	}
	return &Preferences{Theme: theme, Language: language}, nil
}

func (m *Manager) Theme(ctx context.Context) (Theme, error) {
	value, err := m.lookup(ctx, themeKey, string(ThemeLight))
	if err != nil {
		return "", err
	}
	theme := Theme(value)
	if !theme.Valid() {
		log.Warn("Stored theme is invalid, using default", "theme", value)
		return ThemeLight, nil
	}
	return theme, nil
}

func (m *Manager) SetTheme(ctx context.Context, theme Theme) error {
	if !theme.Valid() {
		return ErrInvalidTheme
	}
	return m.store(ctx, themeKey, string(theme))
}

// ToggleTheme flips between light and dark and returns the new theme.
func (m *Manager) ToggleTheme(ctx context.Context) (Theme, error) {
	current, err := m.Theme(ctx)
	if err != nil {
		return "", err
	}

	next := ThemeDark
	if current == ThemeDark {
		next = ThemeLight
	}
	if err := m.store(ctx, themeKey, string(next)); err != nil {
		return "", err
	}
	return next, nil
}

func (m *Manager) Language(ctx context.Context) (Language, error) {
	value, err := m.lookup(ctx, languageKey, string(LanguagePortuguese))
	if err != nil {
		return "", err
	}
	language := Language(value)
	if !language.Valid() {
		log.Warn("Stored language is invalid, using default", "language", value)
		return LanguagePortuguese, nil
	}
	return language, nil
}

func (m *Manager) SetLanguage(ctx context.Context, language Language) error {
	if !language.Valid() {
		return ErrInvalidLanguage
	}
	return m.store(ctx, languageKey, string(language))
}

// ToggleLanguage flips between Portuguese and English and returns the new
// language.
func (m *Manager) ToggleLanguage(ctx context.Context) (Language, error) {
	current, err := m.Language(ctx)
	if err != nil {
		return "", err
	}

	next := LanguageEnglish
	if current == LanguageEnglish {
		next = LanguagePortuguese
	}
	if err := m.store(ctx, languageKey, string(next)); err != nil {
		return "", err
	}
	return next, nil
}

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

func (l Language) Valid() bool {
	return l == LanguagePortuguese || l == LanguageEnglish
}

func (m *Manager) lookup(ctx context.Context, key, fallback string) (string, error) {
	value, err := m.queries.GetPreference(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, nil
}

func (m *Manager) store(ctx context.Context, key, value string) error {
	if err := m.queries.SetPreference(ctx, db.SetPreferenceParams{PrefKey: key, PrefValue: value}); err != nil {
		return fmt.Errorf("failed to store preference %s: %w", key, err)
	}
	log.Debug("Preference updated", "key", key, "value", value)
	return nil
}
