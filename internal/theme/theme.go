package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the application
type Theme struct {
	Name string

	// Text colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// UI element colors
	Border       lipgloss.Color
	BorderActive lipgloss.Color
	Background   lipgloss.Color
	Highlight    lipgloss.Color
}

// Available themes
var (
	CatppuccinMocha = Theme{
		Name:         "Catppuccin Mocha",
		Primary:      lipgloss.Color("#cdd6f4"),
		Secondary:    lipgloss.Color("#a6adc8"),
		Accent:       lipgloss.Color("#f5c2e7"),
		Muted:        lipgloss.Color("#6c7086"),
		Error:        lipgloss.Color("#f38ba8"),
		Success:      lipgloss.Color("#a6e3a1"),
		Warning:      lipgloss.Color("#f9e2af"),
		Border:       lipgloss.Color("#45475a"),
		BorderActive: lipgloss.Color("#89b4fa"),
		Background:   lipgloss.Color("#313244"),
		Highlight:    lipgloss.Color("#45475a"),
	}

	CatppuccinLatte = Theme{
		Name:         "Catppuccin Latte",
		Primary:      lipgloss.Color("#4c4f69"),
		Secondary:    lipgloss.Color("#5c5f77"),
		Accent:       lipgloss.Color("#ea76cb"),
		Muted:        lipgloss.Color("#9ca0b0"),
		Error:        lipgloss.Color("#d20f39"),
		Success:      lipgloss.Color("#40a02b"),
		Warning:      lipgloss.Color("#df8e1d"),
		Border:       lipgloss.Color("#dce0e8"),
		BorderActive: lipgloss.Color("#1e66f5"),
		Background:   lipgloss.Color("#e6e9ef"),
		Highlight:    lipgloss.Color("#ccd0da"),
	}

	Dracula = Theme{
		Name:         "Dracula",
		Primary:      lipgloss.Color("#f8f8f2"),
		Secondary:    lipgloss.Color("#6272a4"),
		Accent:       lipgloss.Color("#ff79c6"),
		Muted:        lipgloss.Color("#6272a4"),
		Error:        lipgloss.Color("#ff5555"),
		Success:      lipgloss.Color("#50fa7b"),
		Warning:      lipgloss.Color("#f1fa8c"),
		Border:       lipgloss.Color("#44475a"),
		BorderActive: lipgloss.Color("#bd93f9"),
		Background:   lipgloss.Color("#282a36"),
		Highlight:    lipgloss.Color("#44475a"),
	}

	SolarizedDark = Theme{
		Name:         "Solarized Dark",
		Primary:      lipgloss.Color("#839496"),
		Secondary:    lipgloss.Color("#586e75"),
		Accent:       lipgloss.Color("#d33682"),
		Muted:        lipgloss.Color("#586e75"),
		Error:        lipgloss.Color("#dc322f"),
		Success:      lipgloss.Color("#859900"),
		Warning:      lipgloss.Color("#b58900"),
		Border:       lipgloss.Color("#073642"),
		BorderActive: lipgloss.Color("#268bd2"),
		Background:   lipgloss.Color("#002b36"),
		Highlight:    lipgloss.Color("#073642"),
	}
)

// AllThemes returns a list of all available themes
func AllThemes() []Theme {
	return []Theme{
		CatppuccinMocha,
		CatppuccinLatte,
		Dracula,
		SolarizedDark,
	}
}

// GetTheme returns a theme by key, defaulting to Catppuccin Mocha if not found
func GetTheme(name string) Theme {
	themes := map[string]Theme{
		"catppuccin-mocha": CatppuccinMocha,
		"catppuccin-latte": CatppuccinLatte,
		"dracula":          Dracula,
		"solarized-dark":   SolarizedDark,
	}

	if theme, ok := themes[name]; ok {
		return theme
	}
	return CatppuccinMocha
}

// Styles are the rendered pieces of the picker.
type Styles struct {
	Title       lipgloss.Style
	Label       lipgloss.Style
	Field       lipgloss.Style
	FieldActive lipgloss.Style
	Dropdown    lipgloss.Style
	Key         lipgloss.Style
	Name        lipgloss.Style
	Language    lipgloss.Style
	Selected    lipgloss.Style
	Break       lipgloss.Style
	ChipOn      lipgloss.Style
	ChipOff     lipgloss.Style
	TagLine     lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
}

// NewStyles builds the picker styles from a palette.
func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		Label: lipgloss.NewStyle().Foreground(t.Secondary).Width(10),
		Field: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		FieldActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderActive).
			Padding(0, 1),
		Dropdown: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderActive).
			Padding(0, 1),
		Key:      lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Name:     lipgloss.NewStyle().Foreground(t.Primary),
		Language: lipgloss.NewStyle().Foreground(t.Muted),
		Selected: lipgloss.NewStyle().Background(t.Highlight).Bold(true),
		Break:    lipgloss.NewStyle().Foreground(t.Border),
		ChipOn: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.BorderActive).
			Padding(0, 1),
		ChipOff: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Padding(0, 1),
		TagLine: lipgloss.NewStyle().Italic(true).Foreground(t.Muted),
		Help:    lipgloss.NewStyle().Foreground(t.Muted),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(t.Error),
	}
}
