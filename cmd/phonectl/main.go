package main

import (
	"fmt"
	"os"

	"github.com/aradsms/pgphone/cmd/phonectl/commands"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := commands.Execute(version, commit); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
