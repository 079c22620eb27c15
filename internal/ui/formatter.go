package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"execexam/internal/config"
	"execexam/internal/domain"
)

// Panel titles
const (
	TitleParameters   = "Parameter Information"
	TitleTestTrace    = "Test Trace"
	TitleTestFailures = "Test Failure(s)"
	TitleFailingTest  = "Failing Test"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	writer io.Writer

	green *color.Color
	red   *color.Color
	gray  *color.Color
}

// NewFormatter creates a new Formatter writing to w
func NewFormatter(cfg *config.Config, w io.Writer) *Formatter {
	return &Formatter{
		config: cfg,
		writer: w,
		green:  color.New(color.FgGreen, color.Bold),
		red:    color.New(color.FgRed, color.Bold),
		gray:   color.New(color.FgHiBlack),
	}
}

// themeColors returns the border and title colours of the configured theme.
func (f *Formatter) themeColors() (border, title *color.Color) {
	if f.config.Flags.Theme == config.ThemeAnsiLight {
		return color.New(color.FgBlue), color.New(color.FgMagenta, color.Bold)
	}
	return color.New(color.FgCyan), color.New(color.FgYellow, color.Bold)
}

// PrintPanel prints content under title, boxed when fancy output is on.
func (f *Formatter) PrintPanel(title, content string) {
	border, titleColor := f.themeColors()
	lines := strings.Split(strings.TrimSuffix(strings.ReplaceAll(content, "\t", "    "), "\n"), "\n")

	if !f.config.Flags.Fancy {
		titleColor.Fprintf(f.writer, "%s\n", title)
		for _, line := range lines {
			fmt.Fprintf(f.writer, "%s\n", line)
		}
		fmt.Fprintln(f.writer)
		return
	}

	width := runewidth.StringWidth(title) + 2
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}

	// ╭─ Title ──────╮
	border.Fprint(f.writer, "╭─ ")
	titleColor.Fprint(f.writer, title)
	border.Fprintf(f.writer, " %s╮\n", strings.Repeat("─", width-runewidth.StringWidth(title)-1))
	for _, line := range lines {
		border.Fprint(f.writer, "│ ")
		fmt.Fprint(f.writer, runewidth.FillRight(line, width))
		border.Fprint(f.writer, " │\n")
	}
	border.Fprintf(f.writer, "╰%s╯\n", strings.Repeat("─", width+2))
}

// PrintParameters prints the run parameters as "name: value" lines. It only
// prints in verbose mode.
func (f *Formatter) PrintParameters() {
	if !f.config.Flags.Verbose {
		return
	}
	var b strings.Builder
	for _, p := range f.config.Parameters() {
		fmt.Fprintf(&b, "%s: %s\n", p[0], p[1])
	}
	f.PrintPanel(TitleParameters, b.String())
}

// PrintDiagnostics prints the test trace, the failure details and the
// source of every failing test.
func (f *Formatter) PrintDiagnostics(d *domain.Diagnostics) {
	f.PrintPanel(TitleTestTrace, d.TestTrace)
	if !d.HasFailures {
		return
	}

	f.PrintPanel(TitleTestFailures, d.FailureDetails)
	for _, snippet := range d.Snippets {
		if snippet.Error != "" {
			f.PrintPanel(TitleFailingTest, snippet.Error+"\n")
			continue
		}
		f.PrintPanel(TitleFailingTest, snippet.Source)
	}
}

// PrintSummary prints the run summary and the overall status line.
func (f *Formatter) PrintSummary(d *domain.Diagnostics) {
	f.gray.Fprintf(f.writer, "%s\n", d.Summary)
	if d.HasFailures {
		f.red.Fprintf(f.writer, "✗ %d failing test(s)\n", len(d.Locations))
	} else {
		f.green.Fprintf(f.writer, "✓ All tests passed!\n")
	}
}

// PrintError prints a run-level error
func (f *Formatter) PrintError(message string, err error) {
	f.red.Fprintf(f.writer, "%s", message)
	if err != nil {
		f.red.Fprintf(f.writer, ": %v", err)
	}
	fmt.Fprintln(f.writer)
}
