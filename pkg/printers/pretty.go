package printers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"

	"tableflip.dev/rangepick/pkg/dates"
	"tableflip.dev/rangepick/pkg/store"
	"tableflip.dev/rangepick/pkg/tui/components/grid"
	"tableflip.dev/rangepick/pkg/value"
)

// Resolved is the printable state of a picker after non-interactive input.
type Resolved struct {
	View            dates.Granularity   `json:"view"`
	Views           []dates.Granularity `json:"views"`
	ActiveStartDate time.Time           `json:"activeStartDate"`
	Label           string              `json:"label"`
	Value           string              `json:"value,omitempty"`
	Emitted         []string            `json:"emitted,omitempty"`
}

// PrettyPrint writes colored, human oriented output.
type PrettyPrint struct {
	out     io.Writer
	noColor bool
}

// New returns a printer writing to out, or to color.Output when out is nil.
// Color is only kept for terminals.
func New(out io.Writer) *PrettyPrint {
	if out == nil {
		return &PrettyPrint{out: color.Output, noColor: color.NoColor}
	}
	pp := &PrettyPrint{out: out, noColor: true}
	if f, ok := out.(*os.File); ok {
		fd := f.Fd()
		pp.noColor = color.NoColor || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
	}
	return pp
}

func (pp *PrettyPrint) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if pp.noColor {
		c.DisableColor()
	}
	return c
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := pp.style(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out, title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := pp.style(color.Bold, color.Underline)
	c := pp.style(color.Faint)

	_, _ = t.Fprint(pp.out, title)
	_, _ = c.Fprintf(pp.out, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out, " selection")
	default:
		_, _ = c.Fprintln(pp.out, " selections")
	}
}

// Selections prints saved selections as a table.
func (pp *PrettyPrint) Selections(list ...*store.Selection) {
	if len(list) == 0 {
		f := pp.style(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out, " none\n\n")
		return
	}

	bold := pp.style(color.Bold)
	faint := pp.style(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Mode"), bold.Sprint("View"), bold.Sprint("Value"), bold.Sprint("Saved"))
	for _, s := range list {
		tbl.AddRow(s.Name, string(s.Mode), string(s.View), s.Value().String(), faint.Sprint(s.SavedAt.Format(time.RFC3339)))
	}
	_, _ = fmt.Fprintln(pp.out, tbl)
}

// Resolved prints the picker state as a key/value table.
func (pp *PrettyPrint) Resolved(r Resolved) {
	bold := pp.style(color.Bold)
	hi := pp.style(color.FgHiYellow)

	views := make([]string, len(r.Views))
	for i, v := range r.Views {
		views[i] = string(v)
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("View"), string(r.View))
	tbl.AddRow(bold.Sprint("Views"), strings.Join(views, ", "))
	tbl.AddRow(bold.Sprint("Active"), value.Point(r.ActiveStartDate).String())
	tbl.AddRow(bold.Sprint("Label"), r.Label)
	if r.Value != "" {
		tbl.AddRow(bold.Sprint("Value"), hi.Sprint(r.Value))
	}
	for _, e := range r.Emitted {
		tbl.AddRow(bold.Sprint("Emitted"), e)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out, tbl)
}

// Grid prints a layout without Lip Gloss styling. Selected cells are bold,
// cells inside a range are underlined and today is inverted.
func (pp *PrettyPrint) Grid(l grid.Layout) {
	width := 0
	for _, c := range l.Cells {
		if len([]rune(c.Label)) > width {
			width = len([]rune(c.Label))
		}
	}
	for _, h := range l.Header {
		if len([]rune(h)) > width {
			width = len([]rune(h))
		}
	}

	plain := pp.style()
	faint := pp.style(color.Faint)
	if len(l.Header) > 0 {
		if len(l.WeekNumbers) > 0 {
			_, _ = faint.Fprint(pp.out, "Wk ")
		}
		cols := make([]string, len(l.Header))
		for i, h := range l.Header {
			cols[i] = pad(h, width)
		}
		_, _ = faint.Fprintln(pp.out, strings.Join(cols, " "))
	}

	for row := 0; row < l.Rows(); row++ {
		if len(l.WeekNumbers) > row {
			_, _ = faint.Fprintf(pp.out, "%2d ", l.WeekNumbers[row])
		}
		for col := 0; col < l.Columns; col++ {
			i := row*l.Columns + col
			if i >= len(l.Cells) {
				break
			}
			if col > 0 {
				_, _ = plain.Fprint(pp.out, " ")
			}
			_, _ = pp.cellStyle(l.Cells[i]).Fprint(pp.out, pad(l.Cells[i].Label, width))
		}
		_, _ = fmt.Fprintln(pp.out, "")
	}
	_, _ = fmt.Fprintln(pp.out, "")
}

func (pp *PrettyPrint) cellStyle(c grid.Cell) *color.Color {
	var attrs []color.Attribute
	switch {
	case c.Empty():
		attrs = append(attrs, color.Faint)
	case c.Weekend:
		attrs = append(attrs, color.FgHiBlack)
	}
	if c.InRange {
		attrs = append(attrs, color.Underline)
	}
	if c.Selected {
		attrs = append(attrs, color.Bold, color.FgHiYellow)
	}
	if c.Today {
		attrs = append(attrs, color.ReverseVideo)
	}
	return pp.style(attrs...)
}

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
