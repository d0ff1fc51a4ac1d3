package nn

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultDecimals is the decimal count used by PrintPredictions when the
// caller passes a negative value.
const DefaultDecimals = 1

var separator = strings.Repeat("-", 80)

// PrintPredictions predicts the output for each input set and renders the
// input/output pairs as a dashed block. Numbers are printed fixed-point with
// the given decimal count, space separated; a negative count selects
// DefaultDecimals. A nil writer prints to stdout.
func (n *Network) PrintPredictions(w io.Writer, inputs [][]float64, decimals int) {
	if w == nil {
		w = os.Stdout
	}
	if decimals < 0 {
		decimals = DefaultDecimals
	}
	fmt.Fprintf(w, "\n%s", separator)
	for _, input := range inputs {
		fmt.Fprint(w, "\nInput:\t")
		printLine(w, input, decimals)
		fmt.Fprint(w, "Output:\t")
		printLine(w, n.Predict(input), decimals)
	}
	fmt.Fprintf(w, "%s\n\n", separator)
}

func printLine(w io.Writer, values []float64, decimals int) {
	for _, v := range values {
		fmt.Fprintf(w, "%.*f ", decimals, v)
	}
	fmt.Fprintln(w)
}
