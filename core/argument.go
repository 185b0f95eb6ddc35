package core

import (
	"slices"

	"github.com/Winch-Team/WinchCLI/display"
	"github.com/Winch-Team/WinchCLI/internal/common"
)

// Argument declares one recognizable flag: the short characters and long names
// that select it, and a help string.
//
// After a match the help string of an emitted copy may instead hold an inline
// value, see Match.
//
// Builder methods have value receivers and return the extended value, so
// declarations read as a chain:
//
//	Short('c').Long("config").WithHelp("Config file")
type Argument struct {
	short []rune
	long  []string
	help  string
}

// Short returns an argument with a single short form, no long forms and empty help.
func Short(c rune) Argument {
	return Argument{short: []rune{c}}
}

// Long returns an argument with a single long form, no short forms and empty help.
func Long(s string) Argument {
	return Argument{long: []string{s}}
}

// Short appends c to the short forms. Duplicates are kept.
func (a Argument) Short(c rune) Argument {
	a.short = common.AppendClip(a.short, c)
	return a
}

// Long appends s to the long forms. Duplicates are kept.
func (a Argument) Long(s string) Argument {
	a.long = common.AppendClip(a.long, s)
	return a
}

// WithHelp replaces the help string.
func (a Argument) WithHelp(s string) Argument {
	a.help = s
	return a
}

// ShortForms returns a copy of the short forms in declaration order.
func (a Argument) ShortForms() []rune { return slices.Clone(a.short) }

// LongForms returns a copy of the long forms in declaration order.
func (a Argument) LongForms() []string { return slices.Clone(a.long) }

// Help returns the help string, or the inline value for a matched copy.
func (a Argument) Help() string { return a.help }

// Clone returns a deep copy of a.
func (a Argument) Clone() Argument {
	return Argument{
		short: slices.Clone(a.short),
		long:  slices.Clone(a.long),
		help:  a.help,
	}
}

func (a Argument) String() string {
	return display.FormatArgument(a.short, a.long, a.help)
}
