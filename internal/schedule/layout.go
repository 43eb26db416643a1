package schedule

import (
	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/timeutil"
)

// MinVisibleFraction is the smallest height a class block may take in the
// time-axis column, so very short entries stay visible.
const MinVisibleFraction = 0.02

const (
	defaultStartHour = 6
	defaultEndHour   = 24
	latestStartHour  = 6
	earliestLastHour = 18
)

// Placement is the horizontal slot of one class inside a day column.
type Placement struct {
	Entry model.ClassEntry

	// Width is the fraction of the column the entry occupies
	Width float64

	// Left is the fractional offset of the entry from the column's left edge
	Left float64

	// Group is the index of the overlap group the entry landed in
	Group int
}

// Layout assigns side-by-side slots to a single day's classes.
//
// Entries are visited in start order and appended to the first existing
// group containing any member they overlap; otherwise they open a new group.
// A group of k members splits the column into k equal slots in insertion
// order. This is a single greedy pass, not a minimal coloring: A-B and B-C
// overlapping puts A, B and C in one group even if A and C are disjoint.
func Layout(day []model.ClassEntry) []Placement {
	sorted := sortedByStart(day)

	var groups [][]int // indices into sorted

	groupOf := make([]int, len(sorted))

	for i, c := range sorted {
		assigned := -1

		for g, members := range groups {
			for _, m := range members {
				if c.Overlaps(sorted[m]) {
					assigned = g

					break
				}
			}

			if assigned >= 0 {
				break
			}
		}

		if assigned < 0 {
			groups = append(groups, nil)
			assigned = len(groups) - 1
		}

		groups[assigned] = append(groups[assigned], i)
		groupOf[i] = assigned
	}

	out := make([]Placement, len(sorted))

	for g, members := range groups {
		k := float64(len(members))

		for pos, idx := range members {
			out[idx] = Placement{
				Entry: sorted[idx],
				Width: 1 / k,
				Left:  float64(pos) / k,
				Group: g,
			}
		}
	}

	return out
}

// Bounds is the visible hour range of the timetable grid, [StartHour, EndHour).
type Bounds struct {
	StartHour int
	EndHour   int
}

// GridBounds derives the visible hour range from every class in the week.
// The range always covers 06:00 through 19:00 and widens to fit the data.
// Without any valid entries it is [6, 24).
func GridBounds(classes []model.ClassEntry) Bounds {
	minHour, maxHour := 0, 0
	seen := false

	for _, c := range classes {
		if !c.Valid() {
			continue
		}

		startHour := int(c.Start) / 60
		endHour := (int(c.End) + 59) / 60

		if !seen {
			minHour, maxHour = startHour, endHour
			seen = true

			continue
		}

		minHour = min(minHour, startHour)
		maxHour = max(maxHour, endHour)
	}

	if !seen {
		return Bounds{StartHour: defaultStartHour, EndHour: defaultEndHour}
	}

	return Bounds{
		StartHour: max(0, min(latestStartHour, minHour)),
		EndHour:   min(24, max(earliestLastHour, maxHour)+1),
	}
}

// StartMinutes returns the grid start as minutes since midnight.
func (b Bounds) StartMinutes() int {
	return b.StartHour * 60
}

// SpanMinutes returns the grid height in minutes.
func (b Bounds) SpanMinutes() int {
	return (b.EndHour - b.StartHour) * 60
}

// Hours lists the hour labels shown down the side of the grid.
func (b Bounds) Hours() []int {
	hours := make([]int, 0, b.EndHour-b.StartHour)
	for h := b.StartHour; h < b.EndHour; h++ {
		hours = append(hours, h)
	}

	return hours
}

// Vertical returns the top offset and height of c as fractions of the grid.
func Vertical(c model.ClassEntry, b Bounds) (top, height float64) {
	span := float64(b.SpanMinutes())
	if span <= 0 {
		return 0, MinVisibleFraction
	}

	top = timeutil.Clamp(float64(int(c.Start)-b.StartMinutes())/span, 0, 1)
	height = max(float64(c.Duration())/span, MinVisibleFraction)

	return top, height
}

// Block is a fully positioned class: horizontal slot plus vertical extent.
type Block struct {
	Placement

	Top    float64
	Height float64
}

// Arrange lays out one day's classes inside the given grid bounds.
func Arrange(day []model.ClassEntry, b Bounds) []Block {
	placements := Layout(day)
	blocks := make([]Block, 0, len(placements))

	for _, p := range placements {
		top, height := Vertical(p.Entry, b)
		blocks = append(blocks, Block{Placement: p, Top: top, Height: height})
	}

	return blocks
}
