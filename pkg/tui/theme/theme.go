package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	List   ListTheme
	Modal  ModalTheme
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Mode   lipgloss.Style
	Error  lipgloss.Style
}

// ListTheme styles section headings and rows.
type ListTheme struct {
	Title    lipgloss.Style
	Section  lipgloss.Style
	Marker   lipgloss.Style
	Empty    lipgloss.Style
	Selected lipgloss.Style
}

// ModalTheme styles the bucket picker, name prompt and confirmations.
type ModalTheme struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Body   lipgloss.Style
	Danger lipgloss.Style
	Key    lipgloss.Style
	Dimmed lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	key := lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Mode:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		List: ListTheme{
			Title:    lipgloss.NewStyle().Bold(true).Underline(true),
			Section:  lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true),
			Marker:   lipgloss.NewStyle().Foreground(lipgloss.Color("218")),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 2),
			Title:  lipgloss.NewStyle().Bold(true),
			Body:   lipgloss.NewStyle(),
			Danger: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			Key:    key,
			Dimmed: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
	}
}
