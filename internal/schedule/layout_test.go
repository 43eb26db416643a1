package schedule

import (
	"testing"

	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestLayout_TransitiveGroup(t *testing.T) {
	// Math overlaps Lit, Lit overlaps PE, Math and PE are disjoint:
	// all three still share one group.
	got := Layout(mondayTrio())
	require.Len(t, got, 3)

	wantNames := []string{"Math", "Lit", "PE"}
	wantLeft := []float64{0, 1.0 / 3, 2.0 / 3}

	for i, p := range got {
		assert.Equal(t, wantNames[i], p.Entry.Name)
		assert.InDelta(t, 1.0/3, p.Width, eps)
		assert.InDelta(t, wantLeft[i], p.Left, eps)
		assert.Equal(t, 0, p.Group)
	}
}

func TestLayout_SeparateGroups(t *testing.T) {
	day := []model.ClassEntry{
		class("A", timeutil.Monday, "08:00", "09:00"),
		class("B", timeutil.Monday, "10:00", "11:00"),
		class("C", timeutil.Monday, "08:30", "09:30"),
	}

	got := Layout(day)
	require.Len(t, got, 3)

	byName := map[string]Placement{}
	for _, p := range got {
		byName[p.Entry.Name] = p
	}

	assert.Equal(t, byName["A"].Group, byName["C"].Group)
	assert.InDelta(t, 0.5, byName["A"].Width, eps)
	assert.InDelta(t, 0.0, byName["A"].Left, eps)
	assert.InDelta(t, 0.5, byName["C"].Width, eps)
	assert.InDelta(t, 0.5, byName["C"].Left, eps)

	assert.NotEqual(t, byName["A"].Group, byName["B"].Group)
	assert.InDelta(t, 1.0, byName["B"].Width, eps)
	assert.InDelta(t, 0.0, byName["B"].Left, eps)
}

func TestLayout_Disjoint(t *testing.T) {
	day := []model.ClassEntry{
		class("Late", timeutil.Friday, "14:00", "15:00"),
		class("Early", timeutil.Friday, "08:00", "09:00"),
		class("Touching", timeutil.Friday, "09:00", "10:00"),
	}

	got := Layout(day)
	require.Len(t, got, 3)
	assert.Equal(t, "Early", got[0].Entry.Name)

	for _, p := range got {
		assert.InDelta(t, 1.0, p.Width, eps)
		assert.InDelta(t, 0.0, p.Left, eps)
	}

	assert.Equal(t, []int{0, 1, 2}, []int{got[0].Group, got[1].Group, got[2].Group})
}

func TestLayout_Empty(t *testing.T) {
	assert.Empty(t, Layout(nil))
}

func TestGridBounds(t *testing.T) {
	tests := []struct {
		name    string
		classes []model.ClassEntry
		want    Bounds
	}{
		{
			name: "no classes",
			want: Bounds{StartHour: 6, EndHour: 24},
		},
		{
			name:    "late morning class keeps lower bound at 6",
			classes: []model.ClassEntry{class("A", timeutil.Monday, "07:30", "08:00")},
			want:    Bounds{StartHour: 6, EndHour: 19},
		},
		{
			name:    "early class widens lower bound",
			classes: []model.ClassEntry{class("A", timeutil.Monday, "05:10", "06:00")},
			want:    Bounds{StartHour: 5, EndHour: 19},
		},
		{
			name:    "evening class widens upper bound",
			classes: []model.ClassEntry{class("A", timeutil.Monday, "19:00", "20:15")},
			want:    Bounds{StartHour: 6, EndHour: 22},
		},
		{
			name:    "upper bound capped at 24",
			classes: []model.ClassEntry{class("A", timeutil.Sunday, "22:00", "23:30")},
			want:    Bounds{StartHour: 6, EndHour: 24},
		},
		{
			name: "invalid entries ignored",
			classes: []model.ClassEntry{
				{Start: timeutil.Invalid, End: timeutil.Invalid},
				class("A", timeutil.Monday, "04:00", "05:00"),
			},
			want: Bounds{StartHour: 4, EndHour: 19},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GridBounds(tt.classes))
		})
	}
}

func TestBounds_Helpers(t *testing.T) {
	b := Bounds{StartHour: 6, EndHour: 24}

	assert.Equal(t, 360, b.StartMinutes())
	assert.Equal(t, 18*60, b.SpanMinutes())
	assert.Len(t, b.Hours(), 18)
	assert.Equal(t, 6, b.Hours()[0])
	assert.Equal(t, 23, b.Hours()[17])
}

func TestVertical(t *testing.T) {
	b := Bounds{StartHour: 6, EndHour: 24}

	top, height := Vertical(class("Math", timeutil.Monday, "09:00", "10:00"), b)
	assert.InDelta(t, 180.0/1080, top, eps)
	assert.InDelta(t, 60.0/1080, height, eps)

	top, height = Vertical(class("Tiny", timeutil.Monday, "12:00", "12:05"), b)
	assert.InDelta(t, 360.0/1080, top, eps)
	assert.InDelta(t, MinVisibleFraction, height, eps)

	// Starting before the grid clamps to the top edge.
	top, _ = Vertical(class("Dawn", timeutil.Monday, "05:00", "07:00"), b)
	assert.InDelta(t, 0.0, top, eps)
}

func TestArrange(t *testing.T) {
	b := GridBounds(mondayTrio())
	blocks := Arrange(mondayTrio(), b)

	require.Len(t, blocks, 3)
	assert.Equal(t, "Math", blocks[0].Entry.Name)
	assert.InDelta(t, 1.0/3, blocks[0].Width, eps)
	assert.Greater(t, blocks[1].Top, blocks[0].Top)
}
