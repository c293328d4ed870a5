// Package ui provides the line-oriented presentation helpers for check output:
// banner headers, rules, and glyph-prefixed status lines.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Status glyphs. The summary table and per-check diagnostics share this
// vocabulary.
const (
	GlyphSuccess = "✓"
	GlyphWarning = "⚠"
	GlyphError   = "✗"
)

const ruleWidth = 60

// Printer writes formatted status lines to a single output stream.
type Printer struct {
	out    io.Writer
	styles Styles
}

// New creates a Printer for out. Colors are enabled only when out is a
// terminal and noColor is false.
func New(out io.Writer, noColor bool) *Printer {
	styles := PlainStyles()
	if !noColor && isTerminal(out) {
		styles = DefaultStyles()
	}
	return &Printer{out: out, styles: styles}
}

// NewWithStyles creates a Printer with explicit styles (for testing).
func NewWithStyles(out io.Writer, styles Styles) *Printer {
	return &Printer{out: out, styles: styles}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Banner prints a blank line, a rule, each line indented, and a closing rule.
func (p *Printer) Banner(lines ...string) {
	fmt.Fprintln(p.out)
	p.Rule()
	for _, line := range lines {
		fmt.Fprintln(p.out, p.styles.Banner.Render("  "+line))
	}
	p.Rule()
}

// Header prints a section banner followed by a blank line.
func (p *Printer) Header(text string) {
	p.Banner(text)
	fmt.Fprintln(p.out)
}

// Rule prints a "====" delimiter line.
func (p *Printer) Rule() {
	fmt.Fprintln(p.out, p.styles.Rule.Render(strings.Repeat("=", ruleWidth)))
}

// Line prints an unprefixed line.
func (p *Printer) Line(format string, a ...any) {
	fmt.Fprintf(p.out, format+"\n", a...)
}

// Detail prints an indented secondary line.
func (p *Printer) Detail(format string, a ...any) {
	fmt.Fprintln(p.out, p.styles.Detail.Render("   "+fmt.Sprintf(format, a...)))
}

// Success prints a ✓-prefixed line.
func (p *Printer) Success(format string, a ...any) {
	fmt.Fprintln(p.out, p.styles.Success.Render(GlyphSuccess+" "+fmt.Sprintf(format, a...)))
}

// Warning prints a ⚠-prefixed line.
func (p *Printer) Warning(format string, a ...any) {
	fmt.Fprintln(p.out, p.styles.Warning.Render(GlyphWarning+" "+fmt.Sprintf(format, a...)))
}

// Error prints a ✗-prefixed line.
func (p *Printer) Error(format string, a ...any) {
	fmt.Fprintln(p.out, p.styles.Error.Render(GlyphError+" "+fmt.Sprintf(format, a...)))
}
