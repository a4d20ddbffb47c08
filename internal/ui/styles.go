package ui

import "github.com/charmbracelet/lipgloss"

// Styles are the Lip Gloss styles the interactive widget renders with.
type Styles struct {
	Title     lipgloss.Style
	Success   lipgloss.Style
	Pending   lipgloss.Style
	Accent    lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	Selected  lipgloss.Style
	Completed lipgloss.Style

	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	Danger         lipgloss.Style
	DangerFocused  lipgloss.Style

	Frame       lipgloss.Style
	FrameActive lipgloss.Style
	Input       lipgloss.Style
	Modal       lipgloss.Style
}

// StylesFor builds the style set matching a Theme.
func StylesFor(t Theme) Styles {
	border := lipgloss.RoundedBorder()
	if t.Name == "mono" {
		border = lipgloss.NormalBorder()
		plain := lipgloss.NewStyle()
		return Styles{
			Title:          plain.Bold(true),
			Success:        plain,
			Pending:        plain,
			Accent:         plain,
			Muted:          plain.Faint(true),
			Error:          plain.Bold(true),
			Help:           plain.Faint(true),
			Selected:       plain.Bold(true).Reverse(true),
			Completed:      plain.Strikethrough(true),
			Button:         plain,
			ButtonFocused:  plain.Reverse(true),
			ButtonDisabled: plain.Faint(true),
			Danger:         plain,
			DangerFocused:  plain.Reverse(true),
			Frame:          plain.Border(border).Padding(0, 1),
			FrameActive:    plain.Border(lipgloss.ThickBorder()).Padding(0, 1),
			Input:          plain.Border(border).Padding(0, 1),
			Modal:          plain.Border(lipgloss.DoubleBorder()).Padding(0, 2),
		}
	}

	accent := lipgloss.Color("12")
	title := lipgloss.NewStyle().Bold(true)
	if t.Name == "neon" {
		accent = lipgloss.Color("14")
		title = title.Foreground(lipgloss.Color("13"))
	}
	btn := lipgloss.NewStyle().Padding(0, 1)
	return Styles{
		Title:          title,
		Success:        lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Pending:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Accent:         lipgloss.NewStyle().Foreground(accent),
		Muted:          lipgloss.NewStyle().Faint(true),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Help:           lipgloss.NewStyle().Faint(true),
		Selected:       lipgloss.NewStyle().Bold(true).Reverse(true),
		Completed:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Strikethrough(true),
		Button:         btn.Foreground(lipgloss.Color("42")),
		ButtonFocused:  btn.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42")),
		ButtonDisabled: btn.Faint(true),
		Danger:         btn.Foreground(lipgloss.Color("9")),
		DangerFocused:  btn.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")),
		Frame:          lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
		FrameActive:    lipgloss.NewStyle().Border(border).BorderForeground(accent).Padding(0, 1),
		Input:          lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
		Modal:          lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 2),
	}
}
