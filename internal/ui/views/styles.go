package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the prompt
type Styles struct {
	Banner    lipgloss.Style
	Exec      lipgloss.Style
	Path      lipgloss.Style
	Size      lipgloss.Style
	Count     lipgloss.Style
	NoMatch   lipgloss.Style
	Rule      lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Highlight lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Banner:    lipgloss.NewStyle().Faint(true),
		Exec:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Path:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Size:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Count:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		NoMatch:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Rule:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Item:      lipgloss.NewStyle(),
		Selected:  lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("238")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Help:      lipgloss.NewStyle().Faint(true),
	}
}
