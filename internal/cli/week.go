package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/schedule"
	"github.com/inovacc/studyplan/internal/timeutil"
)

const hourLabelWidth = 6 // "09:00 "

// Column width bounds for RenderWeek.
const (
	MinColumnWidth = 4
	MaxColumnWidth = 80
)

// WeekOptions controls the weekly grid rendering.
type WeekOptions struct {
	// Days are the columns to draw, left to right; nil means all seven
	Days []timeutil.Weekday

	// SlotMinutes is the time covered by one text row
	SlotMinutes int

	// ColumnWidth is the width of one day column in cells, clamped to
	// [MinColumnWidth, MaxColumnWidth]
	ColumnWidth int

	// Today is highlighted in the header; -1 for none
	Today timeutil.Weekday
}

type cell struct {
	r     rune
	color string
}

// RenderWeek draws the timetable as a text grid. Rows are time slots inside
// the grid bounds of all classes; overlapping classes share their day
// column side by side as computed by schedule.Arrange.
func RenderWeek(classes []model.ClassEntry, t Theme, opts WeekOptions) string {
	days := opts.Days
	if len(days) == 0 {
		days = timeutil.Weekdays()
	}

	slot := max(opts.SlotMinutes, 1)
	colW := timeutil.Clamp(opts.ColumnWidth, MinColumnWidth, MaxColumnWidth)

	bounds := schedule.GridBounds(classes)
	rows := (bounds.SpanMinutes() + slot - 1) / slot

	canvas := make([][]cell, rows)
	for y := range canvas {
		canvas[y] = make([]cell, len(days)*colW)
		for x := range canvas[y] {
			canvas[y][x] = cell{r: ' '}
		}
	}

	for d, wd := range days {
		for _, b := range schedule.Arrange(schedule.ClassesForDay(classes, wd), bounds) {
			if !b.Entry.Valid() {
				continue
			}

			paintBlock(canvas, b, d*colW, colW, rows)
		}
	}

	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", hourLabelWidth))

	for _, wd := range days {
		label := lipgloss.PlaceHorizontal(colW, lipgloss.Center, wd.Short())
		if wd == opts.Today {
			label = t.Accent.Render(label)
		}

		sb.WriteString("│")
		sb.WriteString(label)
	}

	sb.WriteString("\n")

	for y, row := range canvas {
		minute := bounds.StartMinutes() + y*slot
		if minute%60 == 0 {
			sb.WriteString(t.Muted.Render(timeutil.FormatTime(minute)) + " ")
		} else {
			sb.WriteString(strings.Repeat(" ", hourLabelWidth))
		}

		for d := range days {
			sb.WriteString("│")
			sb.WriteString(renderCells(row[d*colW:(d+1)*colW], t))
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// paintBlock fills the cells covered by b inside the day column starting
// at x0, then writes the class name and time span into it.
func paintBlock(canvas [][]cell, b schedule.Block, x0, colW, rows int) {
	y0 := int(math.Floor(b.Top * float64(rows)))
	y1 := int(math.Ceil((b.Top + b.Height) * float64(rows)))
	y0 = timeutil.Clamp(y0, 0, rows-1)
	y1 = timeutil.Clamp(max(y1, y0+1), 0, rows)

	left := int(math.Floor(b.Left * float64(colW)))
	right := int(math.Floor((b.Left + b.Width) * float64(colW)))
	left = timeutil.Clamp(left, 0, colW-1)
	right = timeutil.Clamp(max(right, left+1), 0, colW)

	color := b.Entry.Color
	if color == "" {
		color = model.ColorFor(b.Entry.Name)
	}

	for y := y0; y < y1; y++ {
		for x := x0 + left; x < x0+right; x++ {
			canvas[y][x] = cell{r: ' ', color: color}
		}
	}

	width := right - left
	lines := []string{truncate(b.Entry.Name, width), truncate(b.Entry.Span(), width)}

	for i, line := range lines {
		y := y0 + i
		if y >= y1 {
			break
		}

		for j, r := range []rune(line) {
			canvas[y][x0+left+j].r = r
		}
	}
}

// renderCells styles runs of equal color in one go.
func renderCells(cells []cell, t Theme) string {
	var sb strings.Builder

	for i := 0; i < len(cells); {
		j := i
		for j < len(cells) && cells[j].color == cells[i].color {
			j++
		}

		var run strings.Builder
		for _, c := range cells[i:j] {
			run.WriteRune(c.r)
		}

		if cells[i].color == "" {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(lipgloss.NewStyle().
				Background(lipgloss.Color(cells[i].color)).
				Foreground(t.BlockText).
				Render(run.String()))
		}

		i = j
	}

	return sb.String()
}
