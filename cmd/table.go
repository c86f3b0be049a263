package cmd

import (
	"flag"
	"io"

	"github.com/hnakamur/euclideanring"
)

type TableCommand struct {
	Xs      []int32
	Ys      []int32
	TextOut string
}

func (c *TableCommand) Parse(fs *flag.FlagSet, args []string) error {
	c.Xs = []int32{5, -5}
	c.Ys = []int32{3, -3}
	fs.Var(int32ListValue{l: &c.Xs}, "x", "comma separated dividends.")
	fs.Var(int32ListValue{l: &c.Ys}, "y", "comma separated divisors. 0 is skipped.")
	fs.StringVar(&c.TextOut, "text-out", "-", "text output. empty means no output, - means stdout, other means output file.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(c.Xs) == 0 || len(c.Ys) == 0 {
		return errEmptyList
	}
	return nil
}

func (c *TableCommand) Execute() error {
	return withTextOutWriter(c.TextOut, func(w io.Writer) error {
		return euclideanring.PrintTable(w, c.Xs, c.Ys)
	})
}
