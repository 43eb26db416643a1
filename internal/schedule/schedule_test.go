package schedule

import (
	"testing"
	"time"

	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday is 2024-03-04, a Monday.
func monday(hhmm string) Instant {
	m := timeutil.MustParseTime(hhmm)

	return Sample(time.Date(2024, 3, 4, int(m)/60, int(m)%60, 0, 0, time.Local))
}

func class(name string, day timeutil.Weekday, start, end string) model.ClassEntry {
	return model.ClassEntry{
		ID:      name,
		Name:    name,
		Weekday: day,
		Start:   timeutil.MustParseTime(start),
		End:     timeutil.MustParseTime(end),
	}
}

func mondayTrio() []model.ClassEntry {
	return []model.ClassEntry{
		class("PE", timeutil.Monday, "10:15", "11:00"),
		class("Math", timeutil.Monday, "09:00", "10:00"),
		class("Lit", timeutil.Monday, "09:30", "10:30"),
	}
}

func names(entries []model.ClassEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}

	return out
}

func TestSample(t *testing.T) {
	now := Sample(time.Date(2024, 3, 10, 21, 5, 30, 0, time.Local))

	assert.Equal(t, timeutil.Sunday, now.Weekday)
	assert.Equal(t, 21*60+5, now.Minute)
	assert.Equal(t, "2024-03-10", timeutil.DateKey(now.Date))
	assert.Equal(t, timeutil.Monday, now.Tomorrow())
}

func TestClassesForDay(t *testing.T) {
	classes := append(mondayTrio(), class("Chem", timeutil.Tuesday, "08:00", "09:00"))

	got := ClassesForDay(classes, timeutil.Monday)
	assert.Equal(t, []string{"Math", "Lit", "PE"}, names(got))

	assert.Equal(t, []string{"Chem"}, names(ClassesForDay(classes, timeutil.Tuesday)))
	assert.Empty(t, ClassesForDay(classes, timeutil.Sunday))
}

func TestClassesForDay_InvalidSortsLast(t *testing.T) {
	broken := model.ClassEntry{Name: "Broken", Weekday: timeutil.Monday, Start: timeutil.Invalid, End: 600}
	classes := append([]model.ClassEntry{broken}, mondayTrio()...)

	assert.Equal(t, []string{"Math", "Lit", "PE", "Broken"}, names(ClassesForDay(classes, timeutil.Monday)))
}

func TestCurrentClass(t *testing.T) {
	classes := mondayTrio()

	tests := []struct {
		name   string
		at     string
		want   string
		wantOK bool
	}{
		{name: "before first", at: "08:59", wantOK: false},
		{name: "inside math only", at: "09:15", want: "Math", wantOK: true},
		{name: "math and lit overlap, first in start order wins", at: "09:45", want: "Math", wantOK: true},
		{name: "end is exclusive", at: "10:00", want: "Lit", wantOK: true},
		{name: "lit and pe overlap", at: "10:20", want: "Lit", wantOK: true},
		{name: "after last", at: "11:00", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CurrentClass(classes, monday(tt.at))
			require.Equal(t, tt.wantOK, ok)

			if ok {
				assert.Equal(t, tt.want, got.Name)
			}
		})
	}
}

func TestCurrentClass_OtherDayIgnored(t *testing.T) {
	classes := []model.ClassEntry{class("Tue", timeutil.Tuesday, "09:00", "10:00")}

	_, ok := CurrentClass(classes, monday("09:30"))
	assert.False(t, ok)
}

func TestProgress(t *testing.T) {
	math := class("Math", timeutil.Monday, "09:00", "10:00")

	// 45 of 60 minutes elapsed
	assert.Equal(t, 75, Progress(math, monday("09:45")))
	assert.Equal(t, 45, int(math.End)-int(math.Start)-Remaining(math, monday("09:45")))
	assert.Equal(t, 0, Progress(math, monday("08:00")))
	assert.Equal(t, 100, Progress(math, monday("12:00")))

	third := class("Short", timeutil.Monday, "09:00", "09:03")
	assert.Equal(t, 33, Progress(third, monday("09:01")))
	assert.Equal(t, 67, Progress(third, monday("09:02")))

	degenerate := class("Zero", timeutil.Monday, "09:00", "09:00")
	assert.Equal(t, 0, Progress(degenerate, monday("09:00")))

	invalid := model.ClassEntry{Start: timeutil.Invalid, End: 600}
	assert.Equal(t, 0, Progress(invalid, monday("09:30")))
}

func TestRemaining(t *testing.T) {
	math := class("Math", timeutil.Monday, "09:00", "10:00")

	assert.Equal(t, 15, Remaining(math, monday("09:45")))
	assert.Equal(t, 0, Remaining(math, monday("10:30")))
}

func TestNextClass(t *testing.T) {
	classes := append(mondayTrio(),
		class("Chem", timeutil.Tuesday, "13:00", "14:00"),
		class("Bio", timeutil.Tuesday, "08:00", "09:00"),
	)

	tests := []struct {
		name   string
		at     string
		want   string
		wantOK bool
	}{
		{name: "early morning", at: "07:00", want: "Math", wantOK: true},
		{name: "start must be strictly after now", at: "09:00", want: "Lit", wantOK: true},
		{name: "during lit", at: "09:45", want: "PE", wantOK: true},
		{name: "rolls over to tomorrow earliest", at: "10:30", want: "Bio", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextClass(classes, monday(tt.at))
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestNextClass_SingleDayLookahead(t *testing.T) {
	// Nothing tomorrow (Tuesday); Wednesday must not be considered.
	classes := []model.ClassEntry{class("Wed", timeutil.Wednesday, "09:00", "10:00")}

	_, ok := NextClass(classes, monday("12:00"))
	assert.False(t, ok)
}

func TestNextClass_WrapsSundayToMonday(t *testing.T) {
	classes := []model.ClassEntry{class("Math", timeutil.Monday, "09:00", "10:00")}
	sunday := Sample(time.Date(2024, 3, 10, 20, 0, 0, 0, time.Local))

	got, ok := NextClass(classes, sunday)
	require.True(t, ok)
	assert.Equal(t, "Math", got.Name)
}

func TestTomorrowPreview(t *testing.T) {
	var classes []model.ClassEntry
	for h := 8; h < 16; h++ {
		start := timeutil.FormatTime(h * 60)
		end := timeutil.FormatTime(h*60 + 50)
		classes = append(classes, class(start, timeutil.Tuesday, start, end))
	}

	got := TomorrowPreview(classes, monday("12:00"), 0)
	require.Len(t, got, DefaultPreviewLimit)
	assert.Equal(t, "08:00", got[0].Name)
	assert.Equal(t, "13:00", got[5].Name)

	assert.Len(t, TomorrowPreview(classes, monday("12:00"), 3), 3)
	assert.Len(t, TomorrowPreview(classes, monday("12:00"), 20), 8)
	assert.Empty(t, TomorrowPreview(classes, Sample(time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)), 6))
}
