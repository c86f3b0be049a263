package cmd

import (
	"flag"
	"io"
	"runtime"

	"github.com/hnakamur/euclideanring"
)

type CheckCommand struct {
	Range   euclideanring.CheckRange
	TextOut string
}

func (c *CheckCommand) Parse(fs *flag.FlagSet, args []string) error {
	c.Range.From = -1000
	c.Range.Until = 1000
	c.Range.YMax = 64
	fs.Var(&int32Value{v: &c.Range.From}, "from", "first dividend (inclusive).")
	fs.Var(&int32Value{v: &c.Range.Until}, "until", "last dividend (inclusive).")
	fs.Var(&int32Value{v: &c.Range.YMax}, "y-max", "divisors in [-y-max, y-max] except 0 are checked.")
	fs.IntVar(&c.Range.Workers, "workers", runtime.NumCPU(), "number of concurrent workers.")
	fs.StringVar(&c.TextOut, "text-out", "-", "text output of violations. empty means no output, - means stdout, other means output file.")
	return fs.Parse(args)
}

func (c *CheckCommand) Execute() error {
	return withTextOutWriter(c.TextOut, func(w io.Writer) error {
		return euclideanring.Check(c.Range, w)
	})
}
