package winchcli_test

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/Winch-Team/WinchCLI"
	"github.com/Winch-Team/WinchCLI/errors"
)

func Example_readme() {
	// Simulate command line arguments
	os.Args = []string{"mytool", "--verbose", "--name=Alice"}

	winchcli.NewOptionsParser().
		SetHandler(func(e *winchcli.Event) {
			for _, a := range e.ArgumentsPassed {
				fmt.Println(a.LongForms()[0], "->", a.Help())
			}
		}).
		Execute(
			winchcli.Long("--verbose").WithHelp("Enable verbose output"),
			winchcli.Long("--name=Alice").WithHelp("User name"),
		)
	// Output:
	// --verbose -> Enable verbose output
	// --verbose -> Enable verbose output
	// --name=Alice -> User name
	// --name=Alice -> Alice
	// --name=Alice -> User name
}

func Example_short() {
	// Short forms are compared with the whole argument, dashes included.
	os.Args = []string{"sampleapp", "f", "-f"}

	winchcli.NewOptionsParser().
		SetHandler(func(e *winchcli.Event) {
			fmt.Println("Matched entries:", e.Len())
		}).
		Execute(winchcli.Short('f'))
	// Output: Matched entries: 2
}

func Example_noMatch() {
	os.Args = []string{"app", "--unknown"}

	winchcli.NewOptionsParser().
		SetHandler(func(e *winchcli.Event) {
			fmt.Println(e)
		}).
		Execute(winchcli.Long("--known"))
	// Output: Event{arguments_passed: []}
}

func Example_missingHandler() {
	defer func() {
		err, _ := recover().(error)
		var me errors.MissingHandlerError
		fmt.Println(stderrors.As(err, &me))
		fmt.Println(err)
	}()

	winchcli.NewOptionsParser().Execute(winchcli.Short('v'))
	// Output:
	// true
	// winchcli: execute: no handler set
}

func ExampleMatch() {
	matched := winchcli.Match(
		[]string{"prog", "c"},
		[]winchcli.Argument{winchcli.Short('c').Long("--config").WithHelp("Config file")},
	)
	fmt.Println(matched[0])
	// Output: Argument{short: ['c'], long: ["--config"], help: "Config file"}
}
