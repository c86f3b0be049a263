package cmd

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
)

// stdout is replaced in tests.
var stdout io.Writer = os.Stdout

// withTextOutWriter calls f with the writer for the -text-out option value.
// An empty out discards output, "-" means stdout and anything else is
// a file which is truncated first.
func withTextOutWriter(textOut string, f func(io.Writer) error) (err error) {
	w, closeFn, err := newTextOutWriter(textOut)
	if err != nil {
		return err
	}
	defer func() {
		if err2 := closeFn(); err2 != nil && err == nil {
			err = err2
		}
	}()
	return f(w)
}

func newTextOutWriter(textOut string) (w io.Writer, closeFn func() error, err error) {
	switch textOut {
	case "":
		return ioutil.Discard, func() error { return nil }, nil
	case "-":
		return stdout, func() error { return nil }, nil
	}

	file, err := os.OpenFile(textOut, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open file for -text-out: %s", err)
	}
	bw := bufio.NewWriter(file)
	closeFn = func() error {
		if err := bw.Flush(); err != nil {
			file.Close()
			return fmt.Errorf("cannot flush buffer to file for -text-out: %s", err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("cannot close file for -text-out: %s", err)
		}
		return nil
	}
	return bw, closeFn, nil
}
