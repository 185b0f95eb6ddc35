package winchcli

import "github.com/Winch-Team/WinchCLI/core"

// Argument declares one recognizable flag: its short characters, its long
// names and a help string.
//
// Arguments are values. Every builder method returns the extended copy and
// leaves the receiver untouched:
//
//	config := winchcli.Short('c').Long("--config").WithHelp("Config file")
//
// In a matched copy the help string may hold the inline value instead.
type Argument = core.Argument

// Event is passed to the handler after a scan. ArgumentsPassed holds every
// matched copy in scan order.
//
// Each match contributes an unmodified copy, one copy per inline value with
// the value in its help field, and then another unmodified copy. Handlers
// that only need to know whether a flag was present should deduplicate.
type Event = core.Event

// Handler is the callback registered with SetHandler.
type Handler = core.Handler

// OptionsParser holds the handler and runs the scan.
//
// Usage:
//
//	winchcli.NewOptionsParser().
//	    SetHandler(func(e *winchcli.Event) {
//	        for _, a := range e.ArgumentsPassed {
//	            fmt.Println(a.Help())
//	        }
//	    }).
//	    Execute(winchcli.Long("--config").WithHelp("Config file"))
type OptionsParser = core.OptionsParser
