package model

import "hash/fnv"

// DefaultGoalMinutes is the daily study goal used until the user sets one.
const DefaultGoalMinutes = 120

// Settings holds the small persisted user preferences.
type Settings struct {
	// Goal is the daily study goal in minutes
	Goal int `json:"goal"`

	// Dark selects the dark color palette
	Dark bool `json:"dark"`
}

// DefaultSettings returns Settings with sensible defaults
func DefaultSettings() Settings {
	return Settings{
		Goal: DefaultGoalMinutes,
		Dark: false,
	}
}

// Palette is the set of colors offered for new classes.
var Palette = []string{
	"#4F46E5", // indigo
	"#0EA5E9", // sky
	"#10B981", // emerald
	"#F59E0B", // amber
	"#EF4444", // red
	"#EC4899", // pink
	"#8B5CF6", // violet
	"#14B8A6", // teal
}

// ColorFor picks a stable palette color for a class name.
func ColorFor(name string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))

	return Palette[h.Sum32()%uint32(len(Palette))]
}
