package ui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestCompactTheme_DefaultFont(t *testing.T) {
	th := NewCompactTheme("")
	assert.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{}), th.Font(fyne.TextStyle{}))

	missing := NewCompactTheme(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{}), missing.Font(fyne.TextStyle{}))
}

func TestCompactTheme_CustomFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	th := NewCompactTheme(path)
	res := th.Font(fyne.TextStyle{Bold: true})
	require.NotNil(t, res)
	assert.Equal(t, goregular.TTF, res.Content())

	assert.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{Monospace: true}), th.Font(fyne.TextStyle{Monospace: true}))
}

func TestCompactTheme_Sizes(t *testing.T) {
	th := NewCompactTheme("")
	assert.Equal(t, float32(13), th.Size(theme.SizeNameText))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameInlineIcon), th.Size(theme.SizeNameInlineIcon))
}
