// Command rowpick shows a selectable list of rows in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/rowpick/internal/cli"
	"github.com/rshade/rowpick/pkg/version"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	return root.Execute()
}
