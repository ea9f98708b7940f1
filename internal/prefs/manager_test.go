package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorteio/api/internal/db"
	"github.com/sorteio/api/internal/testutil"
)

func TestDefaults(t *testing.T) {
	m := NewManager(testutil.OpenTestDB(t))

	got, err := m.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Preferences{Theme: ThemeLight, Language: LanguagePortuguese}, got)
}

func TestDefaultsWithoutSeedRows(t *testing.T) {
	conn := testutil.OpenTestDB(t)
	_, err := conn.Exec(`DELETE FROM preferences`)
	require.NoError(t, err)

	got, err := NewManager(conn).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, got.Theme)
	assert.Equal(t, LanguagePortuguese, got.Language)
}

func TestSetTheme(t *testing.T) {
	m := NewManager(testutil.OpenTestDB(t))
	ctx := context.Background()

	require.NoError(t, m.SetTheme(ctx, ThemeDark))
	theme, err := m.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	assert.ErrorIs(t, m.SetTheme(ctx, Theme("sepia")), ErrInvalidTheme)
}

func TestToggleTheme(t *testing.T) {
	m := NewManager(testutil.OpenTestDB(t))
	ctx := context.Background()

	next, err := m.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, next)

	next, err = m.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, next)
}

func TestLanguage(t *testing.T) {
	m := NewManager(testutil.OpenTestDB(t))
	ctx := context.Background()

	require.NoError(t, m.SetLanguage(ctx, LanguageEnglish))
	language, err := m.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, LanguageEnglish, language)

	assert.ErrorIs(t, m.SetLanguage(ctx, Language("fr")), ErrInvalidLanguage)

	next, err := m.ToggleLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, LanguagePortuguese, next)
}

func TestInvalidStoredValueFallsBack(t *testing.T) {
	conn := testutil.OpenTestDB(t)
	ctx := context.Background()

	err := db.New(conn).SetPreference(ctx, db.SetPreferenceParams{PrefKey: themeKey, PrefValue: "neon"})
	require.NoError(t, err)

	theme, err := NewManager(conn).Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
}
