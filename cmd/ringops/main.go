package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hnakamur/euclideanring"
	"github.com/hnakamur/euclideanring/cmd"
)

const globalUsage = `Usage: %s <subcommand> [options]

subcommands:
  eval                Apply an integer operation (degree, div, quot, mod, rem, floor_mod).
  numdiv              Divide two real numbers following IEEE 754.
  table               Show div, mod, quot, rem and floor_mod side by side.
  check               Verify the division identities over a range of operands.
  server              Serve eval and numdiv over HTTP.
  version             Show version

Run %s <subcommand> -h to show help for subcommand.
`

var cmdName = filepath.Base(os.Args[0])

var (
	version string
	commit  string
	date    string
)

var commands = map[string]func() cmd.Command{
	"eval":   func() cmd.Command { return &cmd.EvalCommand{} },
	"numdiv": func() cmd.Command { return &cmd.NumDivCommand{} },
	"table":  func() cmd.Command { return &cmd.TableCommand{} },
	"check":  func() cmd.Command { return &cmd.CheckCommand{} },
	"server": func() cmd.Command { return &euclideanring.ServerCommand{} },
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flag.Usage = func() {
		fmt.Printf(globalUsage, cmdName, cmdName)
		flag.PrintDefaults()
	}
	flag.CommandLine.Parse(args)

	args = flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return 2
	}
	if args[0] == "version" {
		showVersion()
		return 0
	}
	newCommand, ok := commands[args[0]]
	if !ok {
		flag.Usage()
		return 2
	}
	c := newCommand()

	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s %s [options]\n\noptions:\n", cmdName, args[0])
		fs.PrintDefaults()
	}
	err := c.Parse(fs, args[1:])
	if err == nil {
		err = c.Execute()
	}
	return exitCode(err)
}

// exitCode reports err and returns 1 for identity violations,
// 2 for other errors and 0 for nil.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, euclideanring.ErrIdentityViolated) {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
	var roerr *cmd.RequiredOptionError
	if errors.As(err, &roerr) {
		fmt.Fprintf(os.Stderr, "\n")
		roerr.Usage()
	}
	return 2
}

func showVersion() {
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Commit:  %s\n", commit)
	fmt.Printf("Date:    %s\n", date)
}
