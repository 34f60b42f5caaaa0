package models

import "strings"

// Mood is a selectable emotional state.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodSad      Mood = "sad"
	MoodStressed Mood = "stressed"
	MoodAnxious  Mood = "anxious"
	MoodCalm     Mood = "calm"
	MoodTired    Mood = "tired"
)

// AllMoods lists the moods in picker order.
var AllMoods = []Mood{MoodHappy, MoodSad, MoodStressed, MoodAnxious, MoodCalm, MoodTired}

var moodScoreDeltas = map[Mood]float64{
	MoodHappy:    0.5,
	MoodCalm:     0.3,
	MoodTired:    -0.2,
	MoodSad:      -0.4,
	MoodStressed: -0.3,
	MoodAnxious:  -0.4,
}

var moodEmoji = map[Mood]string{
	MoodHappy:    "😊",
	MoodSad:      "😢",
	MoodStressed: "😫",
	MoodAnxious:  "😟",
	MoodCalm:     "😌",
	MoodTired:    "😴",
}

// ParseMood normalizes a mood label ("Happy", " calm ") and reports whether it is known.
func ParseMood(s string) (Mood, bool) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	_, ok := moodScoreDeltas[m]
	return m, ok
}

// ScoreDelta is the mood score adjustment applied when this mood is tracked.
// Unknown moods have no effect.
func (m Mood) ScoreDelta() float64 {
	return moodScoreDeltas[m]
}

// Emoji returns the picker emoji for the mood, or "" for unknown moods.
func (m Mood) Emoji() string {
	return moodEmoji[m]
}

// Label returns the capitalized display name.
func (m Mood) Label() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}
