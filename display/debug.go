package display

import (
	"fmt"
	"strings"
)

// FormatArgument renders one declared or matched argument for debugging.
//
//	Argument{short: ['c'], long: ["config"], help: "Config file"}
//
// This is not usage text; it shows the raw fields, including a help value
// that was replaced by an inline `=value`.
func FormatArgument(short []rune, long []string, help string) string {
	shorts := make([]string, len(short))
	for i, r := range short {
		shorts[i] = fmt.Sprintf("%q", r)
	}
	longs := make([]string, len(long))
	for i, l := range long {
		longs[i] = fmt.Sprintf("%q", l)
	}

	return fmt.Sprintf("Argument{short: [%s], long: [%s], help: %q}",
		strings.Join(shorts, ", "), strings.Join(longs, ", "), help)
}

// FormatEvent renders an event from its already formatted arguments, one per line.
func FormatEvent(arguments []string) string {
	if len(arguments) == 0 {
		return "Event{arguments_passed: []}"
	}

	var builder strings.Builder
	builder.WriteString("Event{arguments_passed: [\n")
	for _, a := range arguments {
		builder.WriteString("\t" + a + ",\n")
	}
	builder.WriteString("]}")
	return builder.String()
}
