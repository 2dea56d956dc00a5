package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"aelist/internal/domain"
	"aelist/internal/format"
)

// RuleWidth is the width of the rule between the prompt and the match list
const RuleWidth = 45

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width       int
	Mode        domain.Mode
	SkipBanner  bool
	Executables int    // records in the index
	Paths       int    // search paths scanned
	TotalSize   uint64 // size of every record in the index
	Selected    *domain.Executable
	MatchCount  int
	Matches     []string // names of the displayed matches
	SelectedRow int      // row of Matches holding the selection, or -1
	Query       string
	Input       string // rendered query prompt
	Help        string // rendered key help
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view for the state's display mode
func (r *Renderer) Render(state ViewState) string {
	var lines []string

	switch state.Mode {
	case domain.ModeLine:
		lines = append(lines, state.Input+"  "+r.Summary(state))
	case domain.ModeLong:
		lines = append(lines, r.header(state)...)
		lines = append(lines, r.styles.Rule.Render(strings.Repeat("─", RuleWidth)))
		lines = append(lines, r.list(state)...)
		if state.Help != "" {
			lines = append(lines, "", state.Help)
		}
	default:
		lines = append(lines, r.header(state)...)
	}

	if state.Width > 0 {
		clip := lipgloss.NewStyle().MaxWidth(state.Width)
		for i, line := range lines {
			lines[i] = clip.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// header renders the banner, the summary and the prompt
func (r *Renderer) header(state ViewState) []string {
	var lines []string
	if !state.SkipBanner {
		lines = append(lines, r.Banner(state))
	}
	return append(lines, r.Summary(state), state.Input)
}

// Banner renders the line describing the whole index
func (r *Renderer) Banner(state ViewState) string {
	return r.styles.Banner.Render(fmt.Sprintf("loaded %d files from %d paths (%s)",
		state.Executables, state.Paths, format.Bytes(state.TotalSize)))
}

// Summary renders the line describing the pending launch
func (r *Renderer) Summary(state ViewState) string {
	count := r.styles.Count.Render(fmt.Sprintf("%d", state.MatchCount))
	if state.MatchCount == 0 {
		count = r.styles.NoMatch.Render("0")
	}
	if state.Selected == nil {
		return fmt.Sprintf("%s %s %s", r.styles.Exec.Render("exec"), r.styles.NoMatch.Render("-"), count)
	}
	return fmt.Sprintf("%s %s (%s) %s",
		r.styles.Exec.Render("exec"),
		r.styles.Path.Render(state.Selected.Path),
		r.styles.Size.Render(format.Bytes(uint64(state.Selected.Size))),
		count)
}

// list renders the displayed matches, one per line
func (r *Renderer) list(state ViewState) []string {
	lines := make([]string, 0, len(state.Matches))
	for i, name := range state.Matches {
		style := r.styles.Item
		marker := "  "
		if i == state.SelectedRow {
			style = r.styles.Selected
			marker = "› "
		}
		lines = append(lines, marker+r.highlightMatch(name, state.Query, r.styles.Highlight.Inherit(style), style))
	}
	return lines
}

// highlightMatch highlights the first occurrence of query in text
func (r *Renderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	index := strings.Index(text, query)
	if query == "" || index == -1 {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}
	return strings.Join(result, "")
}
