// Package tui holds the interactive Bubble Tea widgets of the CLI.
package tui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/wastetrack/internal/client/style"
)

// Item is one selectable row.
type Item struct {
	ID      string
	Label   string
	Special bool
}

// Picker is a list selection model. In multi mode space toggles the row
// under the cursor and enter confirms; in single mode enter picks the row
// under the cursor. Esc, q and ctrl+c cancel.
type Picker struct {
	title     string
	items     []Item
	multi     bool
	cursor    int
	selected  map[string]bool
	done      bool
	cancelled bool
}

// NewPicker builds a picker. preselected ids start selected in multi mode;
// in single mode the cursor starts on the first preselected id.
func NewPicker(title string, items []Item, multi bool, preselected ...string) Picker {
	p := Picker{title: title, items: items, multi: multi, selected: make(map[string]bool)}
	want := make(map[string]bool, len(preselected))
	for _, id := range preselected {
		want[id] = true
	}

	placed := false
	for i, it := range items {
		if !want[it.ID] {
			continue
		}
		if multi {
			p.selected[it.ID] = true
		} else if !placed {
			p.cursor = i
			placed = true
		}
	}
	return p
}

func (p Picker) Init() tea.Cmd { return nil }

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || p.done {
		return p, nil
	}

	k := key.String()
	if len(p.items) == 0 && k != "esc" && k != "q" && k != "ctrl+c" {
		return p, nil
	}

	switch k {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	case " ", "x":
		if p.multi {
			id := p.items[p.cursor].ID
			if p.selected[id] {
				delete(p.selected, id)
			} else {
				p.selected[id] = true
			}
		}
	case "enter":
		if !p.multi {
			p.selected = map[string]bool{p.items[p.cursor].ID: true}
		}
		p.done = true
		return p, tea.Quit
	case "esc", "q", "ctrl+c":
		p.done = true
		p.cancelled = true
		return p, tea.Quit
	}
	return p, nil
}

func (p Picker) View() string {
	if p.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(style.Heading.Render(p.title))
	b.WriteString("\n")

	for i, it := range p.items {
		cursor := "  "
		if i == p.cursor {
			cursor = style.ArrowPrefix + " "
		}

		mark := ""
		if p.multi {
			mark = "[ ] "
			if p.selected[it.ID] {
				mark = "[" + style.Success.Render("x") + "] "
			}
		}

		label := it.Label
		if it.Special {
			label = style.Highlight.Render(label)
		}
		fmt.Fprintf(&b, "%s%s%s\n", cursor, mark, label)
	}

	help := "↑/↓ mover · enter elegir · esc cancelar"
	if p.multi {
		help = "↑/↓ mover · espacio marcar · enter confirmar · esc cancelar"
	}
	b.WriteString(style.Dim.Render(help))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected ids in item order.
func (p Picker) Selected() []string {
	var out []string
	for _, it := range p.items {
		if p.selected[it.ID] {
			out = append(out, it.ID)
		}
	}
	return out
}

// Cancelled reports whether the user left without confirming.
func (p Picker) Cancelled() bool { return p.cancelled }

// Run shows the picker on the given terminal streams until the user confirms
// or cancels. ok is false on cancel.
func Run(in io.Reader, out io.Writer, title string, items []Item, multi bool, preselected ...string) (ids []string, ok bool, err error) {
	m, err := tea.NewProgram(
		NewPicker(title, items, multi, preselected...),
		tea.WithInput(in),
		tea.WithOutput(out),
	).Run()
	if err != nil {
		return nil, false, fmt.Errorf("picker: %w", err)
	}

	p := m.(Picker)
	if p.Cancelled() {
		return nil, false, nil
	}
	return p.Selected(), true, nil
}
