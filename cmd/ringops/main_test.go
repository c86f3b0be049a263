package main

import (
	"errors"
	"flag"
	"fmt"
	"testing"

	"github.com/hnakamur/euclideanring"
	"github.com/hnakamur/euclideanring/cmd"
)

type stubCommand struct {
	err error
}

func (c *stubCommand) Parse(fs *flag.FlagSet, args []string) error {
	return fs.Parse(args)
}

func (c *stubCommand) Execute() error {
	return c.err
}

func withStubCommand(t *testing.T, name string, err error) {
	orig, ok := commands[name]
	commands[name] = func() cmd.Command { return &stubCommand{err: err} }
	t.Cleanup(func() {
		if ok {
			commands[name] = orig
		} else {
			delete(commands, name)
		}
	})
}

func TestRunExitCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "ok", err: nil, want: 0},
		{name: "violation", err: fmt.Errorf("3 pairs: %w", euclideanring.ErrIdentityViolated), want: 1},
		{name: "other", err: errors.New("something failed"), want: 2},
		{name: "division by zero", err: fmt.Errorf("mod 1 by 0: %w", euclideanring.ErrDivisionByZero), want: 2},
	}
	for _, tc := range testCases {
		withStubCommand(t, "check", tc.err)
		if got := run([]string{"check"}); got != tc.want {
			t.Errorf("unexpected exit code for %s, got=%d, want=%d", tc.name, got, tc.want)
		}
	}
}

func TestRunCheck(t *testing.T) {
	args := []string{"check", "-from", "-20", "-until", "20", "-y-max", "5", "-workers", "2", "-text-out", ""}
	if got := run(args); got != 0 {
		t.Errorf("unexpected exit code, got=%d, want=0", got)
	}
	args = []string{"check", "-from", "1", "-until", "0", "-text-out", ""}
	if got := run(args); got != 2 {
		t.Errorf("unexpected exit code for invalid range, got=%d, want=2", got)
	}
}

func TestRunUnknownSubcommand(t *testing.T) {
	if got := run([]string{"no-such-command"}); got != 2 {
		t.Errorf("unexpected exit code, got=%d, want=2", got)
	}
	if got := run(nil); got != 2 {
		t.Errorf("unexpected exit code for no subcommand, got=%d, want=2", got)
	}
}
