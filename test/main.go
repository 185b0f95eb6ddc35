package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/Winch-Team/WinchCLI"
)

func main() {
	flag := color.New(color.FgCyan, color.Bold)

	winchcli.NewOptionsParser().
		SetHandler(func(e *winchcli.Event) {
			if e.Len() == 0 {
				fmt.Println(color.YellowString("No arguments matched"))
				return
			}
			for _, a := range e.ArgumentsPassed {
				fmt.Printf("%s %s\n", flag.Sprintf("%q %q", string(a.ShortForms()), a.LongForms()), a.Help())
			}
			fmt.Printf("\n%v\n", e)
		}).
		Execute(
			winchcli.Short('v').Long("--verbose").WithHelp("Enable verbose output"),
			winchcli.Long("--port=8080").Long("--port=9090").WithHelp("Port to run the server on"),
			winchcli.Long("serve").WithHelp("Start the server"),
		)
}
