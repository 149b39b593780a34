package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// KeyTable lays the bindings out as a static table, one row per action.
func KeyTable(k KeyMap) table.Model {
	columns := []table.Column{
		{Title: "Action", Width: 14},
		{Title: "Keys", Width: 22},
	}

	bindings := []key.Binding{k.ChopLeft, k.ChopRight, k.Reset, k.ToggleDebug, k.Quit}
	rows := make([]table.Row, 0, len(bindings)+1)
	for _, b := range bindings {
		rows = append(rows, table.Row{b.Help().Desc, keyNames(b.Keys())})
	}
	rows = append(rows, table.Row{"start", "any other key, click PLAY"})

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

func keyNames(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, ", ")
}
