package common

import (
	"slices"
	"strings"
)

// InlineSeparator splits an invocation argument into its name and inline values.
const InlineSeparator = "="

// RunesEqual reports whether s, read as a sequence of characters, is exactly rs.
// An empty string equals an empty (or nil) sequence.
func RunesEqual(s string, rs []rune) bool {
	return slices.Equal([]rune(s), rs)
}

// SplitInline splits arg on every separator. The result always has at least
// one element; "=" yields two empty parts.
func SplitInline(arg string) []string {
	return strings.Split(arg, InlineSeparator)
}

// AppendClip appends v to s without writing into spare capacity that another
// value may still be sharing.
func AppendClip[T any](s []T, v T) []T {
	return append(slices.Clip(s), v)
}
