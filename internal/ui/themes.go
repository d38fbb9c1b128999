package ui

import (
	"fmt"
	"os"
	"sort"
	"sync"
)

// Theme is a set of ANSI escape codes, one per role in the output.
type Theme struct {
	Name      string
	Primary   string // strategy names, accents
	Secondary string // dimensions, secondary values
	Success   string // agreement, OK status
	Warning   string // clamped worker counts, durations
	Error     string // mismatches, failures
	Info      string // host and runtime samples
	Bold      string
	Underline string
	Reset     string
}

// Theme names accepted by ParseTheme and --theme.
const (
	DarkThemeName    = "dark"
	LightThemeName   = "light"
	OrangeThemeName  = "orange"
	NoColorThemeName = "none"
)

func ansi256(code int) string { return fmt.Sprintf("\033[38;5;%dm", code) }

// newTheme fills the style codes shared by every colored theme.
func newTheme(name string, primary, secondary, success, warning, failure, info int) Theme {
	return Theme{
		Name:      name,
		Primary:   ansi256(primary),
		Secondary: ansi256(secondary),
		Success:   ansi256(success),
		Warning:   ansi256(warning),
		Error:     ansi256(failure),
		Info:      ansi256(info),
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = newTheme(DarkThemeName, 39, 245, 82, 220, 196, 141)
	// LightTheme uses darker tones for light backgrounds.
	LightTheme = newTheme(LightThemeName, 27, 240, 28, 130, 124, 54)
	// OrangeTheme is a warm variant of the dark theme.
	OrangeTheme = newTheme(OrangeThemeName, 208, 245, 82, 214, 196, 69)
	// NoColorTheme emits no escape codes at all.
	NoColorTheme = Theme{Name: NoColorThemeName}

	themes = map[string]Theme{
		DarkThemeName:    DarkTheme,
		LightThemeName:   LightTheme,
		OrangeThemeName:  OrangeTheme,
		NoColorThemeName: NoColorTheme,
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// ThemeNames lists the accepted theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTheme looks up a theme by name. The empty name selects DarkTheme.
func ParseTheme(name string) (Theme, bool) {
	if name == "" {
		return DarkTheme, true
	}
	t, ok := themes[name]
	return t, ok
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme activates the named theme unless colors are disabled by noColor
// or by the presence of NO_COLOR (see no-color.org). Unknown names fall back
// to DarkTheme.
func InitTheme(name string, noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	t, ok := ParseTheme(name)
	if !ok {
		t = DarkTheme
	}
	SetCurrentTheme(t)
}
