package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Brand colors for the banner and result card.
const (
	accentColor = lipgloss.Color("#8BC34A")
	borderColor = lipgloss.Color("#2196F3")
)

const separatorWidth = 50

// Printer writes styled status and result lines to an io.Writer.
// When color is disabled every line is plain text.
type Printer struct {
	out io.Writer

	ok   *color.Color
	warn *color.Color
	fail *color.Color
	head *color.Color

	banner lipgloss.Style
	card   lipgloss.Style
}

// NewPrinter returns a Printer for out. useColor toggles ANSI styling.
func NewPrinter(out io.Writer, useColor bool) *Printer {
	p := &Printer{
		out:  out,
		ok:   color.New(color.FgHiGreen),
		warn: color.New(color.FgYellow),
		fail: color.New(color.FgRed),
		head: color.New(color.FgHiCyan, color.Bold),
	}

	r := lipgloss.NewRenderer(out)
	p.banner = r.NewStyle().Bold(true).Padding(0, 2).Border(lipgloss.DoubleBorder())
	p.card = r.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())

	// With color on, terminal detection still decides whether escapes
	// are emitted.
	if useColor {
		p.banner = p.banner.Foreground(accentColor).BorderForeground(accentColor)
		p.card = p.card.BorderForeground(borderColor)
	} else {
		for _, c := range []*color.Color{p.ok, p.warn, p.fail, p.head} {
			c.DisableColor()
		}
	}
	return p
}

// Banner prints title inside a box.
func (p *Printer) Banner(title string) {
	fmt.Fprintln(p.out, p.banner.Render(title))
}

// Separator prints a full-width rule.
func (p *Printer) Separator() {
	fmt.Fprintln(p.out, "\n"+strings.Repeat("=", separatorWidth))
}

// Heading prints a section heading preceded by a blank line.
func (p *Printer) Heading(text string) {
	fmt.Fprintln(p.out)
	p.head.Fprintln(p.out, text)
}

// Line prints text unstyled.
func (p *Printer) Line(text string) {
	fmt.Fprintln(p.out, text)
}

// Option prints a numbered menu entry.
func (p *Printer) Option(n int, text string) {
	fmt.Fprintf(p.out, "%d. %s\n", n, text)
}

// OK prints a success marker followed by text.
func (p *Printer) OK(format string, args ...any) {
	p.ok.Fprint(p.out, "✓ ")
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Warn prints text in the warning color.
func (p *Printer) Warn(text string) {
	p.warn.Fprintln(p.out, text)
}

// Fail prints an error line.
func (p *Printer) Fail(text string) {
	p.fail.Fprintln(p.out, "Error: "+text)
}

// Card prints label and description inside a rounded box.
func (p *Printer) Card(label, description string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.card.Render(label+": "+description))
}
