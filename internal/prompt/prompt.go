// Package prompt reads bounded numbers from an interactive terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrNoInput is returned once the input is exhausted.
var ErrNoInput = errors.New("no more input")

// Asker asks questions on w and reads the answers from r, one per line.
type Asker struct {
	in  *bufio.Scanner
	out io.Writer
	bad lipgloss.Style
}

// New creates an Asker. Colours are only used when w is a terminal.
func New(r io.Reader, w io.Writer) *Asker {
	re := lipgloss.NewRenderer(w)
	return &Asker{
		in:  bufio.NewScanner(r),
		out: w,
		bad: re.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// AskFloat asks until the answer is a number within [min, max]. A nil bound
// is open. Invalid answers are reported and asked again.
func (a *Asker) AskFloat(question string, min, max *float64) (float64, error) {
	lo, hi := -math.MaxFloat64, math.MaxFloat64
	if min != nil {
		lo = *min
	}
	if max != nil {
		hi = *max
	}

	for {
		fmt.Fprint(a.out, question)
		if !a.in.Scan() {
			fmt.Fprintln(a.out)
			if err := a.in.Err(); err != nil {
				return 0, fmt.Errorf("read answer: %w", err)
			}
			return 0, ErrNoInput
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(a.in.Text()), 64)
		switch {
		case err != nil:
			fmt.Fprintln(a.out, a.bad.Render("Invalid value given. Please enter a valid number!"))
		case v >= lo && v <= hi:
			return v, nil
		default:
			fmt.Fprintln(a.out, a.bad.Render(fmt.Sprintf(
				"Invalid selection. Please enter a selection between %s and %s", formatBound(lo), formatBound(hi))))
		}
	}
}

// AskInt is AskFloat truncated toward zero.
func (a *Asker) AskInt(question string, min, max *int) (int, error) {
	var lo, hi *float64
	if min != nil {
		f := float64(*min)
		lo = &f
	}
	if max != nil {
		f := float64(*max)
		hi = &f
	}
	v, err := a.AskFloat(question, lo, hi)
	if err != nil {
		return 0, err
	}
	t := math.Trunc(v)
	switch {
	case t >= math.MaxInt:
		return math.MaxInt, nil
	case t <= math.MinInt:
		return math.MinInt, nil
	}
	return int(t), nil
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Int returns a pointer to v, for bounds.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for bounds.
func Float(v float64) *float64 { return &v }
