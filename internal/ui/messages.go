package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successMsgStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorMsgStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	infoMsgStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	warnMsgStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Printer writes user-facing status messages. The zero value is not usable;
// construct with NewPrinter.
type Printer struct {
	out io.Writer
}

// NewPrinter returns a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Success prints a success message.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.out, successMsgStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Error prints an error message.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.out, errorMsgStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Info prints an informational message.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.out, infoMsgStyle.Render("ℹ "+fmt.Sprintf(format, args...)))
}

// Warn prints a warning message.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.out, warnMsgStyle.Render("! "+fmt.Sprintf(format, args...)))
}

// Table prints a rendered table (or any block of output).
func (p *Printer) Table(rendered string) {
	fmt.Fprintln(p.out, rendered)
}
