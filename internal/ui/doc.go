// Package ui provides theme and color support for the command-line output.
// It defines ANSI color schemes and the lipgloss styles used for the
// summary tables, so that presentation code shares one source of colors and
// honors --no-color and NO_COLOR consistently.
package ui
