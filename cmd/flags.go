package cmd

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
)

type Command interface {
	Parse(fs *flag.FlagSet, args []string) error
	Execute() error
}

// int32Value is a flag.Value for an int32 which remembers whether
// it was set on the command line.
type int32Value struct {
	v     *int32
	isSet bool
}

func (v *int32Value) String() string {
	if v.v == nil {
		return ""
	}
	return strconv.FormatInt(int64(*v.v), 10)
}

func (v *int32Value) Set(s string) error {
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return err
	}
	*v.v = int32(i)
	v.isSet = true
	return nil
}

// int32ListValue is a flag.Value for a comma separated list of int32.
type int32ListValue struct {
	l *[]int32
}

func (v int32ListValue) String() string {
	if v.l == nil {
		return ""
	}
	ss := make([]string, len(*v.l))
	for i, x := range *v.l {
		ss[i] = strconv.FormatInt(int64(x), 10)
	}
	return strings.Join(ss, ",")
}

func (v int32ListValue) Set(s string) error {
	var l []int32
	for _, f := range strings.Split(s, ",") {
		i, err := strconv.ParseInt(strings.TrimSpace(f), 10, 32)
		if err != nil {
			return err
		}
		l = append(l, int32(i))
	}
	*v.l = l
	return nil
}

type RequiredOptionError struct {
	fs     *flag.FlagSet
	option string
}

func newRequiredOptionError(fs *flag.FlagSet, option string) *RequiredOptionError {
	return &RequiredOptionError{fs: fs, option: option}
}

func (e *RequiredOptionError) Error() string {
	return fmt.Sprintf("option -%s is required.", e.option)
}

func (e *RequiredOptionError) Usage() {
	e.fs.Usage()
}

var errEmptyList = errors.New("list must not be empty")
