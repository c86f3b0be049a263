package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hnakamur/euclideanring"
)

type EvalCommand struct {
	Op euclideanring.Operation
	X  int32
	Y  int32
}

func (c *EvalCommand) Parse(fs *flag.FlagSet, args []string) error {
	var opName string
	fs.StringVar(&opName, "op", "", fmt.Sprintf("operation name (%s).", strings.Join(euclideanring.OperationNames(), ", ")))
	x := &int32Value{v: &c.X}
	y := &int32Value{v: &c.Y}
	fs.Var(x, "x", "first operand.")
	fs.Var(y, "y", "second operand (divisor), ignored for degree.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if opName == "" {
		return newRequiredOptionError(fs, "op")
	}
	op, err := euclideanring.ParseOperation(opName)
	if err != nil {
		return err
	}
	c.Op = op
	if !x.isSet {
		return newRequiredOptionError(fs, "x")
	}
	if op.Arity() == 2 && !y.isSet {
		return newRequiredOptionError(fs, "y")
	}
	return nil
}

func (c *EvalCommand) Execute() error {
	v, err := euclideanring.Apply(c.Op, c.X, c.Y)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, v)
	return err
}

type NumDivCommand struct {
	A float64
	B float64
}

func (c *NumDivCommand) Parse(fs *flag.FlagSet, args []string) error {
	fs.Float64Var(&c.A, "a", 0, "dividend.")
	fs.Float64Var(&c.B, "b", 1, "divisor. 0 yields +Inf, -Inf or NaN.")
	return fs.Parse(args)
}

func (c *NumDivCommand) Execute() error {
	_, err := fmt.Fprintln(stdout, euclideanring.FormatReal(euclideanring.ApplyReal(c.A, c.B)))
	return err
}
