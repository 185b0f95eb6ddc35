// Package winchcli is a minimal command-line argument declaration and dispatch
// library for Go.
//
// A program declares the flags it recognizes as Argument values, built from
// a short or long form and extended by chaining. Execute scans the process
// arguments against those declarations and calls a single handler with every
// match. An inline `=value` is delivered in the Help field of a matched copy.
//
// The library only matches and dispatches. It does not validate, convert
// values, render usage text or report unknown arguments.
package winchcli
