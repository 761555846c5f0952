package argparse

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Column widths for the help text argument blocks. Labels longer than the
// column push their help text right by a single space instead of wrapping.
const (
	positionalColumn = 20
	optionColumn     = 30
)

// Usage returns the single-line usage summary for the registered arguments:
//
//	Usage: <program> [options] <pos1> <pos2> ...
//
// The "[options]" marker appears only when at least one optional argument is
// registered.
func (p *Parser) Usage() string {
	var b strings.Builder
	b.WriteString("Usage: " + p.programName())
	if len(p.optionalOrder) > 0 {
		b.WriteString(" [options]")
	}
	for _, name := range p.positionalOrder {
		b.WriteString(" <" + name + ">")
	}
	b.WriteString("\n")
	return b.String()
}

// Help returns the full help text: the usage line, the optional program
// description, a "Positional arguments:" block, and an "Options:" block with
// column-aligned labels. Optional arguments render as
// "-f, --long-name LONG-NAME" with the value placeholder omitted for
// Flag-kind optionals.
func (p *Parser) Help() string {
	label := color.New(color.Bold)
	if p.opts.NoColor {
		label.DisableColor()
	}

	var b strings.Builder
	b.WriteString(p.Usage())
	if p.opts.Description != "" {
		b.WriteString("\n" + p.opts.Description + "\n")
	}
	if len(p.positionalOrder) > 0 {
		b.WriteString("\nPositional arguments:\n")
		for _, name := range p.positionalOrder {
			arg := p.positionals[name]
			writeEntry(&b, label, arg.name, arg.help, positionalColumn)
		}
	}
	if len(p.optionalOrder) > 0 {
		b.WriteString("\nOptions:\n")
		for _, name := range p.optionalOrder {
			arg := p.optionals[name]
			writeEntry(&b, label, arg.usageLabel(), arg.help, optionColumn)
		}
	}
	return b.String()
}

// writeEntry renders one argument line, padding the label to the column
// width. Padding is computed from the unstyled label so color escapes do not
// skew the alignment.
func writeEntry(b *strings.Builder, label *color.Color, name, help string, width int) {
	padding := " "
	if n := width - 2 - len(name); n > 0 {
		padding = strings.Repeat(" ", n)
	}
	fmt.Fprintf(b, "  %s%s%s\n", label.Sprint(name), padding, help)
}

// usageLabel renders the option's help-text label, e.g. "-f, --filter
// FILTER" or "-h, --help".
func (o *Optional) usageLabel() string {
	var b strings.Builder
	if o.flag != 0 {
		b.WriteString("-" + string(o.flag) + ", ")
	}
	b.WriteString("--" + o.name)
	if o.kind != Flag {
		b.WriteString(" " + strings.ToUpper(o.name))
	}
	return b.String()
}
