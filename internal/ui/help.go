package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"aelist/internal/domain"
	"aelist/internal/format"
)

// Pager shows long text outside of the prompt
type Pager interface {
	Page(r io.Reader) error
}

// RenderHelpContent generates the key help shown in the pager
func RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("aelist Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Prompt"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("text"), descStyle.Render("Filter executables by name (case sensitive)")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("backspace"), descStyle.Render("Delete the last character")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("enter"), descStyle.Render("Launch the selected executable and exit")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("ctrl+c"), descStyle.Render("Exit without launching")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Selection"))
	help.WriteString("\n")
	help.WriteString("  An executable named exactly like the query wins.\n")
	help.WriteString("  Otherwise the first match in search path order is selected.\n")
	help.WriteString("  A query without matches keeps the previous selection.\n")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("ctrl+l"), descStyle.Render("Page every current match")))
	help.WriteString(fmt.Sprintf("  %s           %s", keyStyle.Render("f1"), descStyle.Render("Show this help")))

	return help.String()
}

// WriteMatchList writes executables to w as name, path and size columns
func WriteMatchList(w io.Writer, executables []domain.Executable) error {
	for _, exe := range executables {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", exe.Name, exe.Path, format.Bytes(uint64(exe.Size))); err != nil {
			return err
		}
	}
	return nil
}

// matchListReader streams the match list as the pager reads it. Closing
// the reader stops the writer.
func matchListReader(executables []domain.Executable) io.ReadCloser {
	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(WriteMatchList(pw, executables))
	}()
	return pr
}

// restoreDelay lets ov finish with the screen before bubbletea takes it back
const restoreDelay = 100 * time.Millisecond

var errNoProgram = errors.New("pager has no program to borrow the terminal from")

// ovPager pages text with ov while the program has released the terminal
type ovPager struct {
	program *tea.Program
}

// NewPager creates a pager that borrows the terminal from program
func NewPager(program *tea.Program) Pager {
	return &ovPager{program: program}
}

// Page blocks until the user quits ov
func (p *ovPager) Page(r io.Reader) error {
	if p.program == nil {
		return errNoProgram
	}
	if err := p.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("release terminal: %w", err)
	}
	defer func() {
		time.Sleep(restoreDelay)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(r)
	if err != nil {
		return fmt.Errorf("open pager: %w", err)
	}
	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}
