package ui

import "github.com/charmbracelet/lipgloss"

// TableStyles holds the lipgloss styles used to render summary tables.
type TableStyles struct {
	Border lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
}

// palette maps an ANSI theme to lipgloss 256-color codes.
var palette = map[string]struct {
	accent, dim lipgloss.Color
}{
	DarkThemeName:   {"39", "245"},
	LightThemeName:  {"27", "240"},
	OrangeThemeName: {"208", "245"},
}

// CurrentTableStyles builds table styles for the active theme. With the
// no-color theme every style renders plain text.
func CurrentTableStyles() TableStyles {
	cell := lipgloss.NewStyle().Padding(0, 1)
	p, ok := palette[GetCurrentTheme().Name]
	if !ok {
		return TableStyles{
			Border: lipgloss.NewStyle(),
			Header: cell,
			Cell:   cell,
		}
	}
	return TableStyles{
		Border: lipgloss.NewStyle().Foreground(p.dim),
		Header: cell.Bold(true).Foreground(p.accent),
		Cell:   cell,
	}
}
