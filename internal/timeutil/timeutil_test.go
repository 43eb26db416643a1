package timeutil

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormatRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		got, err := ParseTime(FormatTime(m))
		require.NoError(t, err)
		require.Equal(t, TimeOfDay(m), got, "minute %d", m)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:45", want: 585},
		{name: "unpadded hour", input: "7:30", want: 450},
		{name: "end of day", input: "24:00", want: 1440},
		{name: "surrounding spaces", input: " 10:15 ", want: 615},
		{name: "empty", input: "", wantErr: true},
		{name: "no colon", input: "0930", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "minute overflow", input: "10:60", wantErr: true},
		{name: "past end of day", input: "24:01", wantErr: true},
		{name: "too many parts", input: "10:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedTime)
				assert.Equal(t, Invalid, got)
				assert.False(t, got.Valid())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_JSON(t *testing.T) {
	type wrapper struct {
		Start TimeOfDay `json:"start"`
		End   TimeOfDay `json:"end"`
	}

	data, err := json.Marshal(wrapper{Start: 540, End: 600})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"09:00","end":"10:00"}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"start":"nope","end":"10:30"}`), &w))
	assert.Equal(t, Invalid, w.Start)
	assert.Equal(t, TimeOfDay(630), w.End)
	assert.Equal(t, "--:--", w.Start.String())
}

func TestClamp(t *testing.T) {
	for n := -50; n <= 50; n++ {
		got := Clamp(n, -10, 10)
		assert.GreaterOrEqual(t, got, -10)
		assert.LessOrEqual(t, got, 10)

		if n >= -10 && n <= 10 {
			assert.Equal(t, n, got)
		}
	}

	assert.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
	assert.Equal(t, 1.0, Clamp(3.2, 0.0, 1.0))
}

func TestDateKey(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	start := time.Date(1999, time.December, 25, 23, 59, 0, 0, time.Local)
	for i := 0; i < 800; i += 7 {
		key := DateKey(start.AddDate(0, 0, i))
		assert.Len(t, key, 10)
		assert.Regexp(t, pattern, key)
	}

	late := time.Date(2024, time.March, 5, 23, 30, 0, 0, time.Local)
	assert.Equal(t, "2024-03-05", DateKey(late))

	parsed, err := ParseDateKey("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", DateKey(parsed))

	_, err = ParseDateKey("05/03/2024")
	assert.Error(t, err)
}

func TestStartOfWeekMonday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "monday itself", in: time.Date(2024, 3, 4, 15, 0, 0, 0, time.Local), want: "2024-03-04"},
		{name: "wednesday", in: time.Date(2024, 3, 6, 8, 0, 0, 0, time.Local), want: "2024-03-04"},
		{name: "sunday belongs to previous monday", in: time.Date(2024, 3, 10, 23, 0, 0, 0, time.Local), want: "2024-03-04"},
		{name: "across month boundary", in: time.Date(2024, 3, 2, 12, 0, 0, 0, time.Local), want: "2024-02-26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeekMonday(tt.in)
			assert.Equal(t, tt.want, DateKey(got))
			assert.Equal(t, 0, got.Hour())
			assert.Equal(t, 0, got.Minute())
			assert.Equal(t, Monday, WeekdayOf(got))
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2024-03-04 is a Monday.
	base := time.Date(2024, 3, 4, 12, 0, 0, 0, time.Local)
	for i, want := range Weekdays() {
		assert.Equal(t, want, WeekdayOf(base.AddDate(0, 0, i)))
	}

	assert.Equal(t, Monday, Sunday.Next())
	assert.Equal(t, Saturday, Friday.Next())
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    Weekday
		wantErr bool
	}{
		{input: "0", want: Monday},
		{input: "6", want: Sunday},
		{input: "mon", want: Monday},
		{input: "Wednesday", want: Wednesday},
		{input: "THU", want: Thursday},
		{input: "satur", want: Saturday},
		{input: "7", wantErr: true},
		{input: "mo", wantErr: true},
		{input: "funday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
