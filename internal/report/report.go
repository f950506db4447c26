// Package report renders simulation and pricing results for a terminal.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/xtding233/skyblock-rng/internal/catalog"
	"github.com/xtding233/skyblock-rng/internal/dropsim"
)

// Printer writes reports to a buffered writer. Call Flush when done.
type Printer struct {
	// Quiet suppresses per-roll lines.
	Quiet bool

	w   *bufio.Writer
	num *message.Printer

	pass, fail, accent, dim, note, header lipgloss.Style
}

// New creates a Printer on w. Colours are only used when w is a terminal.
func New(w io.Writer) *Printer {
	re := lipgloss.NewRenderer(w)
	return &Printer{
		w:      bufio.NewWriterSize(w, 64*1024),
		num:    message.NewPrinter(language.English),
		pass:   re.NewStyle().Foreground(lipgloss.Color("10")),
		fail:   re.NewStyle().Foreground(lipgloss.Color("9")),
		accent: re.NewStyle().Foreground(lipgloss.Color("11")),
		dim:    re.NewStyle().Foreground(lipgloss.Color("12")),
		note:   re.NewStyle().Foreground(lipgloss.Color("1")),
		header: re.NewStyle().Bold(true),
	}
}

// Flush writes any buffered output.
func (p *Printer) Flush() error { return p.w.Flush() }

// Line writes one plain line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Blank writes an empty line.
func (p *Printer) Blank() { p.w.WriteByte('\n') }

// Float formats v in its shortest exact form, without exponent.
func Float(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DropMenu lists the catalog as numbered choices, followed by Custom.
func (p *Printer) DropMenu(cat catalog.Catalog) {
	rows := make([][]string, 0, len(cat.Drops)+1)
	for i, d := range cat.Drops {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			d.Name,
			"%" + Float(d.BaseChance),
			"1/" + Float(dropsim.Odds(d.BaseChance)),
			yesNo(d.Meter),
		})
	}
	rows = append(rows, []string{strconv.Itoa(len(cat.Drops) + 1), "Custom", "", "", ""})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		Headers("#", "Drop", "Chance", "Odds", "RNG Meter").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return p.header.Padding(0, 1)
			case col == 0:
				return p.dim.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	p.Blank()
	p.Line("Select which item you want to simulate RNG:")
	p.Line("%s", t.Render())
	p.Blank()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Header announces a run.
func (p *Printer) Header(effectiveChance float64, rolls int) {
	p.Blank()
	p.Line("Odds with Magic Find and Looting: %s/%s. Rolling %s times:",
		p.pass.Render("1"),
		p.fail.Render(Float(dropsim.Odds(effectiveChance))),
		p.accent.Render(p.num.Sprintf("%d", rolls)))
	p.Blank()
}

// Roll prints one roll outcome unless the printer is quiet.
func (p *Printer) Roll(out dropsim.RollOutcome) {
	if p.Quiet {
		return
	}
	roll := p.accent.Render(strconv.Itoa(out.Roll))
	switch {
	case !out.Requirement.Possible:
		p.Line("Roll #%s: %s, can't succeed even with max Magic Find.", roll, p.fail.Render("FAIL"))
	case out.Succeeded:
		p.Line("Roll #%s: %s, minimum magic find to succeed is %s. RNG Meter: %%%s",
			roll, p.pass.Render("PASS"), p.pass.Render(strconv.Itoa(out.Requirement.MagicFind)), Float(out.MeterPercent))
	default:
		p.Line("Roll #%s: %s, minimum magic find to succeed is %s which is higher than yours.",
			roll, p.fail.Render("FAIL"), p.fail.Render(strconv.Itoa(out.Requirement.MagicFind)))
	}
}

// Summary prints the success counts of a run.
func (p *Printer) Summary(s dropsim.Summary) {
	if s.Rolls > 0 {
		p.Blank()
	}
	p.Line("Out of %s rolls, %s rolls succeeded.", p.num.Sprintf("%d", s.Rolls), p.num.Sprintf("%d", s.Successes))
	if s.SuccessShare != nil {
		p.Line("You got %%%s of the possible drops (%d/%d) with maximum magic find, with your magic find.",
			p.accent.Render(Float(*s.SuccessShare)), s.Successes, s.PossibleDrops)
	}
}

// Statistics prints the distribution block of a run. Nothing is printed
// when no roll was winnable.
func (p *Printer) Statistics(s dropsim.Summary) {
	mf := s.MagicFind
	if mf.Count == 0 {
		return
	}
	p.Blank()
	p.stat("Mean (Average) Succeed Magic Find", mf.Mean)
	p.stat("Median (Middle) Succeed Magic Find", mf.Median)
	p.stat("Mode (Most Repeated) Succeed Magic Find", mf.Mode)
	p.stat("Range (Difference between smallest and highest) Succeed Magic Find", mf.Range)

	rolls := s.RollsUntilSuccess
	if rolls.Count == 0 {
		return
	}
	p.Blank()
	if s.HypotheticalMeter {
		p.Line("%s: The RNG Meter doesn't work on this drop type, so values below are based on if the RNG meter "+
			"existed as a percentage to expected amount of rolls to get the drop, but didn't actually guarantee "+
			"drops or modify chances.", p.note.Render("Note"))
		p.Blank()
	}
	p.stat("Mean (Average) Amount of Rolls until Succeed", rolls.Mean)
	p.stat("Median (Middle) Amount of Rolls until Succeed", rolls.Median)
	p.stat("Mode (Most Repeated) Amount of Rolls until Succeed", rolls.Mode)
	p.stat("Range (Difference between smallest and highest) Amount of Rolls until Succeed", rolls.Range)
	p.stat("Maximum Amount of Rolls before Succeed", rolls.Max)
}

func (p *Printer) stat(label string, st *dropsim.Stat) {
	if st == nil {
		return
	}
	if st.Meter == nil {
		p.Line("%s: %s", label, Float(st.Value))
		return
	}
	p.Line("%s: %s (%%%s RNG Meter)", label, Float(st.Value), Float(*st.Meter))
}
