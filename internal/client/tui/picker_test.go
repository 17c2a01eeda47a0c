package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var items = []Item{
	{ID: "pet", Label: "Pet"},
	{ID: "vidrio", Label: "Vidrio"},
	{ID: "cafe-composta", Label: "Café para composta", Special: true},
}

func press(t *testing.T, p Picker, keys ...tea.KeyMsg) (Picker, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var m tea.Model
		m, cmd = p.Update(k)
		p = m.(Picker)
	}
	return p, cmd
}

var (
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestPicker_MultiSelect(t *testing.T) {
	p := NewPicker("Tipos", items, true)

	p, _ = press(t, p, space, down, down, space)
	assert.Equal(t, []string{"pet", "cafe-composta"}, p.Selected())

	// toggling again removes
	p, _ = press(t, p, space)
	assert.Equal(t, []string{"pet"}, p.Selected())

	p, cmd := press(t, p, enter)
	require.NotNil(t, cmd)
	assert.False(t, p.Cancelled())
	assert.Equal(t, []string{"pet"}, p.Selected())
	assert.Empty(t, p.View())
}

func TestPicker_Preselected(t *testing.T) {
	p := NewPicker("Tipos", items, true, "vidrio")
	assert.Equal(t, []string{"vidrio"}, p.Selected())

	single := NewPicker("Área", items, false, "cafe-composta")
	single, _ = press(t, single, enter)
	assert.Equal(t, []string{"cafe-composta"}, single.Selected())
}

func TestPicker_SingleSelect(t *testing.T) {
	p := NewPicker("Área", items, false)
	p, _ = press(t, p, down, down, down, up, space)
	assert.Empty(t, p.Selected(), "space does nothing in single mode")

	p, _ = press(t, p, enter)
	assert.Equal(t, []string{"vidrio"}, p.Selected())
}

func TestPicker_Cancel(t *testing.T) {
	p := NewPicker("Tipos", items, true)
	p, cmd := press(t, p, space, esc)
	require.NotNil(t, cmd)
	assert.True(t, p.Cancelled())
}

func TestPicker_View(t *testing.T) {
	p := NewPicker("Tipos", items, true, "pet")
	v := p.View()
	assert.Contains(t, v, "Tipos")
	assert.Contains(t, v, "Vidrio")
	assert.Contains(t, v, "Café para composta")
	assert.Contains(t, v, "espacio marcar")
}

func TestPicker_IgnoresOtherMessages(t *testing.T) {
	p := NewPicker("Tipos", items, true)
	m, cmd := p.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Nil(t, cmd)
	assert.Equal(t, p.Selected(), m.(Picker).Selected())
}
