package core

import (
	"os"

	"github.com/Winch-Team/WinchCLI/errors"
)

// OptionsParser owns the handler and runs a dispatch.
// The zero value has no handler and must be configured with SetHandler.
type OptionsParser struct {
	handler Handler
}

func NewOptionsParser() *OptionsParser {
	return &OptionsParser{}
}

// SetHandler stores h and returns p for chaining. A nil h unsets the handler.
func (p *OptionsParser) SetHandler(h Handler) *OptionsParser {
	p.handler = h
	return p
}

// Configured reports whether a handler is set.
func (p *OptionsParser) Configured() bool {
	return p.handler != nil
}

// Run matches args against declared and calls the handler once, synchronously,
// with the resulting event. The handler is called even when nothing matched.
//
// Without a handler Run returns errors.MissingHandlerError and does not match.
func (p *OptionsParser) Run(args []string, declared ...Argument) error {
	if p.handler == nil {
		return errors.NewMissingHandler("run")
	}

	p.handler(&Event{ArgumentsPassed: Match(args, declared)})
	return nil
}

// Execute is Run over the full process argument list, program name included.
//
// Calling Execute without a handler is a programming error: it panics with
// errors.MissingHandlerError.
func (p *OptionsParser) Execute(declared ...Argument) {
	if p.handler == nil {
		panic(errors.NewMissingHandler("execute"))
	}
	p.handler(&Event{ArgumentsPassed: Match(os.Args, declared)})
}
