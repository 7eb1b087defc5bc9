package metrics

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const progressWidth = 45

// ConsoleReporter prints progress on a single rewritten line.
type ConsoleReporter struct {
	out   io.Writer
	total int
}

func NewConsoleReporter(out io.Writer, total int) *ConsoleReporter {
	return &ConsoleReporter{out: out, total: total}
}

// Report redraws the progress line after done games.
func (r *ConsoleReporter) Report(done int) {
	won := fmt.Sprintf("Won %d game out of %d games", done, r.total)
	percentage := "[0.00%]"
	if r.total > 0 {
		percentage = fmt.Sprintf("[%.2f%%]", 100*float64(done)/float64(r.total))
	}
	padding := max(progressWidth-len(won)-len(percentage), 1)
	fmt.Fprintf(r.out, "\r%s%s%s", won, strings.Repeat(" ", padding), percentage)
}

// Finish prints the histogram and the cumulative curve.
func (r *ConsoleReporter) Finish(wins []int, probabilities []float64) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "List of wins:")
	fmt.Fprintln(r.out, FormatInts(wins))
	fmt.Fprintln(r.out, "List of cumulative probabilities of winning at some number of moves:")
	fmt.Fprintln(r.out, FormatFloats(probabilities))
}

// FormatInts renders values as a bracketed, comma separated list.
func FormatInts(values []int) string {
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func FormatFloats(values []float64) string {
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return "[" + strings.Join(items, ", ") + "]"
}
