package core

import (
	"slices"

	"github.com/Winch-Team/WinchCLI/internal/common"
)

// MatchOne reports whether the raw invocation argument arg selects a.
//
// arg matches when its characters are exactly the full short-form sequence of
// a (so ['c'] matches "c" but not "-c", and ['a', 'b'] matches only "ab"), or
// when arg is one of the long forms. There is no dash stripping or prefix matching.
// An empty arg therefore matches any argument without short forms.
func MatchOne(arg string, a Argument) bool {
	return common.RunesEqual(arg, a.short) || slices.Contains(a.long, arg)
}

// Match scans args against declared and returns the matched copies in scan
// order: arguments in the order given, then declarations in declared order.
//
// For every match arg is split on "=". The first part emits an unmodified
// copy, each later part emits a copy whose help is that part's text, and one
// more unmodified copy follows. A plain match thus yields two entries and
// "name=value" yields three.
//
// args is used as is; element zero (usually the program name) is not skipped.
// Unmatched arguments are dropped silently.
func Match(args []string, declared []Argument) []Argument {
	var matched []Argument
	for _, arg := range args {
		for _, a := range declared {
			if !MatchOne(arg, a) {
				continue
			}
			for i, part := range common.SplitInline(arg) {
				c := a.Clone()
				if i > 0 {
					c.help = part
				}
				matched = append(matched, c)
			}
			matched = append(matched, a.Clone())
		}
	}
	return matched
}
