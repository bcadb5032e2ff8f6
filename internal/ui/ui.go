// Package ui prints coloured status lines to the terminal.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	infoTag = color.New(color.FgCyan).Sprint("[+]")
	warnTag = color.New(color.FgYellow).Sprint("[!]")
	failTag = color.New(color.FgRed).Sprint("[-]")
	okTag   = color.New(color.FgGreen).Sprint("[✓]")
)

// Printer writes progress lines; Quiet drops everything but errors.
type Printer struct {
	Out   io.Writer
	Quiet bool
}

func New(quiet bool) *Printer { return &Printer{Out: os.Stderr, Quiet: quiet} }

func (p *Printer) Infof(format string, args ...any) {
	if p == nil || p.Quiet {
		return
	}
	fmt.Fprintf(p.Out, "%s %s\n", infoTag, fmt.Sprintf(format, args...))
}

func (p *Printer) Warnf(format string, args ...any) {
	if p == nil || p.Quiet {
		return
	}
	fmt.Fprintf(p.Out, "%s %s\n", warnTag, fmt.Sprintf(format, args...))
}

func (p *Printer) Successf(format string, args ...any) {
	if p == nil || p.Quiet {
		return
	}
	fmt.Fprintf(p.Out, "%s %s\n", okTag, fmt.Sprintf(format, args...))
}

func (p *Printer) Errorf(format string, args ...any) {
	if p == nil {
		return
	}
	fmt.Fprintf(p.Out, "%s %s\n", failTag, fmt.Sprintf(format, args...))
}
