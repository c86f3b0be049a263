package euclideanring

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

const tableRowFormat = "%11s %11s %11s %11s %11s %11s %11s\n"

// PrintTable writes the results of all division and remainder operations
// for every combination of xs and non-zero ys.
func PrintTable(w io.Writer, xs, ys []int32) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, tableRowFormat, "x", "y", "div", "mod", "quot", "rem", "floor_mod"); err != nil {
		return err
	}
	for _, x := range xs {
		for _, y := range ys {
			if y == 0 {
				continue
			}
			_, err := fmt.Fprintf(bw, tableRowFormat,
				itoa(x), itoa(y), itoa(Div(x, y)), itoa(Mod(x, y)),
				itoa(Quot(x, y)), itoa(Rem(x, y)),
				itoa(int32(FloorMod(int64(x), int64(y)))))
			if err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func itoa(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}
