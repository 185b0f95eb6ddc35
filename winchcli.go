package winchcli

import "github.com/Winch-Team/WinchCLI/core"

// Short returns an Argument with the single short form c.
//
// Short forms are compared as a whole character sequence against the raw
// invocation argument: Short('c') matches "c", not "-c".
var Short = core.Short

// Long returns an Argument with the single long form s.
//
// Long forms are matched by exact membership, so include any dashes:
// Long("--config") matches "--config" only.
var Long = core.Long

// NewOptionsParser returns a parser without a handler.
// Execute panics until SetHandler has been called.
var NewOptionsParser = core.NewOptionsParser

// Match scans args against declared without dispatching. It is the matcher
// behind Execute, exposed for callers that already hold an argument list.
var Match = core.Match
