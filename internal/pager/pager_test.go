package pager

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_QuitKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{name: "q", key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{name: "esc", key: tea.KeyMsg{Type: tea.KeyEsc}},
		{name: "ctrl+c", key: tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newModel("dir", "content")
			_, cmd := m.Update(tt.key)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestModel_OtherKeysDoNotQuit(t *testing.T) {
	t.Parallel()

	m := newModel("dir", strings.Repeat("line\n", 50))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if cmd != nil {
		_, quit := cmd().(tea.QuitMsg)
		assert.False(t, quit)
	}
}

func TestModel_WindowSizing(t *testing.T) {
	t.Parallel()

	m := newModel("dir", strings.Repeat("line\n", 50))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	got := updated.(model)

	assert.True(t, got.ready)
	assert.Equal(t, 40, got.viewport.Width)
	assert.Equal(t, 8, got.viewport.Height) // title and footer rows subtracted

	view := got.View()
	assert.Contains(t, view, "dir")
	assert.Contains(t, view, "q to quit")
}

func TestModel_TinyWindowClampsViewportHeight(t *testing.T) {
	t.Parallel()

	m := newModel("dir", "content")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 1})
	got := updated.(model)

	assert.Equal(t, 1, got.viewport.Height)
}

func TestModel_ViewEmptyUntilSized(t *testing.T) {
	t.Parallel()

	m := newModel("dir", "content")
	assert.Empty(t, m.View())
}
