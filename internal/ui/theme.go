package ui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Danger     lipgloss.Color
	BarFill    lipgloss.Color
	BarEmpty   lipgloss.Color
}

var palettes = map[string]palette{
	"catppuccin": {
		Background: lipgloss.Color("#1e1e2e"),
		Surface:    lipgloss.Color("#313244"),
		Text:       lipgloss.Color("#cdd6f4"),
		Muted:      lipgloss.Color("#a6adc8"),
		Accent:     lipgloss.Color("#cba6f7"),
		Border:     lipgloss.Color("#585b70"),
		Success:    lipgloss.Color("#94e2d5"),
		Warning:    lipgloss.Color("#f9e2af"),
		Danger:     lipgloss.Color("#f38ba8"),
		BarFill:    lipgloss.Color("#94e2d5"),
		BarEmpty:   lipgloss.Color("#313244"),
	},
	"gruvbox": {
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Text:       lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#a89984"),
		Accent:     lipgloss.Color("#fabd2f"),
		Border:     lipgloss.Color("#504945"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fe8019"),
		Danger:     lipgloss.Color("#fb4934"),
		BarFill:    lipgloss.Color("#b8bb26"),
		BarEmpty:   lipgloss.Color("#3c3836"),
	},
}

const defaultPalette = "catppuccin"

type styleSet struct {
	Title    lipgloss.Style
	Panel    lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Danger   lipgloss.Style
	Selected lipgloss.Style
}

func newStyles(name string) styleSet {
	p, ok := palettes[name]
	if !ok {
		p = palettes[defaultPalette]
	}
	return styleSet{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		Muted:    lipgloss.NewStyle().Foreground(p.Muted),
		Accent:   lipgloss.NewStyle().Foreground(p.Accent),
		Success:  lipgloss.NewStyle().Foreground(p.Success),
		Danger:   lipgloss.NewStyle().Foreground(p.Danger),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(p.Text).Background(p.Surface),
	}
}

// hpBar renders a fixed-width HP gauge.
func hpBar(styles styleSet, hp, maxHP, width int) string {
	if width < 4 {
		width = 4
	}
	if maxHP <= 0 {
		maxHP = 1
	}
	filled := hp * width / maxHP
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	style := styles.Success
	if hp*100 <= maxHP*25 {
		style = styles.Danger
	}
	return style.Render(bar)
}
