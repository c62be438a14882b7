// Package grid lays out and renders the cells of the century, decade, year
// and month views.
package grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/rangepick/pkg/dates"
	"tableflip.dev/rangepick/pkg/picker"
	"tableflip.dev/rangepick/pkg/tui/theme"
)

// Cell is one selectable tile. Padding cells in the month view have a zero
// Start.
type Cell struct {
	Start    time.Time
	Label    string
	Weekend  bool
	Today    bool
	Selected bool
	InRange  bool
}

// Empty reports whether c is padding.
func (c Cell) Empty() bool { return c.Start.IsZero() }

// Layout is a laid out view: cells in row-major order.
type Layout struct {
	View        dates.Granularity
	Columns     int
	Header      []string
	Cells       []Cell
	WeekNumbers []int
}

// Rows returns the number of cell rows.
func (l Layout) Rows() int {
	if l.Columns == 0 {
		return 0
	}
	return (len(l.Cells) + l.Columns - 1) / l.Columns
}

// CellGranularity is the granularity of one tile of view.
func CellGranularity(view dates.Granularity) dates.Granularity {
	g, ok := view.Finer()
	if !ok {
		return dates.Day
	}
	return g
}

// Columns returns how many tiles are laid out per row in view.
func Columns(view dates.Granularity) int {
	if view == dates.Month {
		return 7
	}
	return 3
}

// Build lays out the view described by props.
func Build(props picker.ContentProps) (Layout, error) {
	switch props.View {
	case dates.Century:
		return buildSpan(props, 10, func(t time.Time) string {
			return fmt.Sprintf("%d-%d", t.Year(), t.Year()+9)
		})
	case dates.Decade:
		return buildSpan(props, 10, func(t time.Time) string {
			return fmt.Sprintf("%d", t.Year())
		})
	case dates.Year:
		return buildSpan(props, 12, func(t time.Time) string {
			return props.Locale.MonthShort(t.Month())
		})
	case dates.Month:
		return buildMonth(props)
	}
	return Layout{}, fmt.Errorf("%w: %q", picker.ErrInvalidView, string(props.View))
}

func buildSpan(props picker.ContentProps, count int, label func(time.Time) string) (Layout, error) {
	g := CellGranularity(props.View)
	start, err := dates.PeriodStart(props.View, props.ActiveStartDate)
	if err != nil {
		return Layout{}, err
	}
	layout := Layout{View: props.View, Columns: Columns(props.View)}
	for i := 0; i < count; i++ {
		cellStart, err := dates.Shift(g, start, i)
		if err != nil {
			return Layout{}, err
		}
		layout.Cells = append(layout.Cells, newCell(props, g, cellStart, label(cellStart)))
	}
	return layout, nil
}

func buildMonth(props picker.ContentProps) (Layout, error) {
	first, err := dates.PeriodStart(dates.Month, props.ActiveStartDate)
	if err != nil {
		return Layout{}, err
	}
	weekStart := props.CalendarType.WeekStart()
	layout := Layout{View: dates.Month, Columns: 7}
	for i := 0; i < 7; i++ {
		layout.Header = append(layout.Header, props.Locale.WeekdayShort(time.Weekday((int(weekStart)+i)%7)))
	}

	offset := (int(first.Weekday()) - int(weekStart) + 7) % 7
	for i := 0; i < offset; i++ {
		layout.Cells = append(layout.Cells, Cell{})
	}
	days := first.AddDate(0, 1, -1).Day()
	for d := 0; d < days; d++ {
		at := first.AddDate(0, 0, d)
		cell := newCell(props, dates.Day, at, fmt.Sprintf("%2d", at.Day()))
		cell.Weekend = isWeekend(props.CalendarType, at.Weekday())
		layout.Cells = append(layout.Cells, cell)
	}
	for len(layout.Cells)%7 != 0 {
		layout.Cells = append(layout.Cells, Cell{})
	}

	if props.ShowWeekNumbers {
		for row := 0; row < layout.Rows(); row++ {
			layout.WeekNumbers = append(layout.WeekNumbers, props.CalendarType.WeekNumber(firstInRow(layout, row)))
		}
	}
	return layout, nil
}

func firstInRow(l Layout, row int) time.Time {
	for _, c := range l.Cells[row*l.Columns : (row+1)*l.Columns] {
		if !c.Empty() {
			return c.Start
		}
	}
	return time.Time{}
}

func newCell(props picker.ContentProps, g dates.Granularity, start time.Time, label string) Cell {
	cell := Cell{Start: start, Label: label}
	end, err := dates.PeriodEnd(g, start)
	if err != nil {
		return cell
	}
	cell.Today = !props.Today.IsZero() && !props.Today.Before(start) && !props.Today.After(end)
	if props.HasValue() && !start.After(props.To) && !end.Before(props.From) {
		edge := !props.From.Before(start) && !props.From.After(end) ||
			!props.To.Before(start) && !props.To.After(end)
		cell.Selected = edge
		cell.InRange = !edge
	}
	return cell
}

func isWeekend(ct dates.CalendarType, d time.Weekday) bool {
	switch ct {
	case dates.CalendarArabic, dates.CalendarHebrew:
		return d == time.Friday || d == time.Saturday
	}
	return d == time.Saturday || d == time.Sunday
}

// Index returns the position of the cell containing t, or -1.
func (l Layout) Index(t time.Time) int {
	g := CellGranularity(l.View)
	for i, c := range l.Cells {
		if !c.Empty() && dates.Contains(g, c.Start, t) {
			return i
		}
	}
	return -1
}

// Render draws the layout, highlighting the cell containing cursor.
func Render(l Layout, cursor time.Time, th theme.GridTheme) string {
	width := 0
	for _, c := range l.Cells {
		if w := lipgloss.Width(c.Label); w > width {
			width = w
		}
	}
	for _, h := range l.Header {
		if w := lipgloss.Width(h); w > width {
			width = w
		}
	}
	focus := l.Index(cursor)

	var lines []string
	if len(l.Header) > 0 {
		cols := make([]string, 0, len(l.Header)+1)
		if len(l.WeekNumbers) > 0 {
			cols = append(cols, th.Header.Render(pad("Wk", 2)))
		}
		for _, h := range l.Header {
			cols = append(cols, th.Header.Render(pad(h, width)))
		}
		lines = append(lines, strings.Join(cols, " "))
	}

	for row := 0; row < l.Rows(); row++ {
		cols := make([]string, 0, l.Columns+1)
		if len(l.WeekNumbers) > row {
			cols = append(cols, th.WeekNumber.Render(fmt.Sprintf("%2d", l.WeekNumbers[row])))
		}
		for col := 0; col < l.Columns; col++ {
			i := row*l.Columns + col
			if i >= len(l.Cells) {
				break
			}
			cols = append(cols, renderCell(l.Cells[i], i == focus, width, th))
		}
		lines = append(lines, strings.Join(cols, " "))
	}
	return strings.Join(lines, "\n")
}

func renderCell(c Cell, focused bool, width int, th theme.GridTheme) string {
	text := pad(c.Label, width)
	if c.Empty() {
		return th.Outside.Render(text)
	}
	style := th.Cell
	if c.Weekend {
		style = th.Weekend
	}
	if c.Today {
		style = style.Inherit(th.Today)
	}
	if c.InRange {
		style = style.Inherit(th.InRange)
	}
	if c.Selected {
		style = style.Inherit(th.Selected)
	}
	if focused {
		style = style.Inherit(th.Cursor)
	}
	return style.Render(text)
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
