package viewer

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableLines(rows int) []string {
	lines := []string{"┌──────┐", "│ name │", "├──────┤"}
	for i := 0; i < rows; i++ {
		lines = append(lines, fmt.Sprintf("│ r%-3d │", i))
	}
	return append(lines, "└──────┘")
}

func viewText(m *Model) string {
	return fmt.Sprint(m.View().Content)
}

func TestNewDefaultsSize(t *testing.T) {
	m := New(" records ", tableLines(1), 0, 0)
	assert.Equal(t, defaultWidth, m.width)
	assert.Equal(t, defaultHeight, m.height)
	assert.Equal(t, "records", m.Title)
}

func TestViewShowsTopOfTable(t *testing.T) {
	m := New("stdin", tableLines(40), 20, 6)
	m.NoColor = true

	out := viewText(m)
	assert.Contains(t, out, "┌──────┐")
	assert.Contains(t, out, "│ name │")
	assert.NotContains(t, out, "└──────┘")
	assert.Contains(t, out, "stdin")
	assert.Contains(t, out, "44 lines")
	assert.True(t, m.View().AltScreen)
}

func TestUpdateNavigation(t *testing.T) {
	m := New("", tableLines(40), 20, 6)
	m.NoColor = true

	_, _ = m.Update(tea.KeyPressMsg{Code: 'G', Text: "G"})
	assert.Contains(t, viewText(m), "└──────┘")

	_, _ = m.Update(tea.KeyPressMsg{Code: 'g', Text: "g"})
	assert.Contains(t, viewText(m), "┌──────┐")

	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.NotContains(t, viewText(m), "┌──────┐")
}

func TestUpdateResize(t *testing.T) {
	m := New("", tableLines(40), 20, 6)
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 30, Height: 60})
	assert.Nil(t, cmd)
	require.IsType(t, &Model{}, updated)
	assert.Equal(t, 30, m.width)
	assert.Equal(t, 60, m.height)
	assert.Contains(t, viewText(m), "└──────┘", "whole table fits")
}

func TestUpdateQuit(t *testing.T) {
	keys := []tea.KeyPressMsg{
		{Code: 'q', Text: "q"},
		{Code: tea.KeyEscape},
		{Code: 'c', Mod: tea.ModCtrl},
	}
	for _, k := range keys {
		t.Run(k.String(), func(t *testing.T) {
			m := New("", tableLines(1), 20, 6)
			_, cmd := m.Update(k)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestFooterColor(t *testing.T) {
	m := New("t", tableLines(1), 20, 6)
	m.NoColor = true
	plain := m.footer()
	assert.False(t, strings.Contains(plain, "\x1b["))

	m.NoColor = false
	assert.NotEqual(t, plain, m.footer())
}
