package models

// ActivityKind names a tracked user activity.
type ActivityKind string

const (
	ActivityMessage  ActivityKind = "message"
	ActivityMood     ActivityKind = "mood"
	ActivityWellness ActivityKind = "wellness"
	ActivityReminder ActivityKind = "reminder"
	ActivityCheckin  ActivityKind = "checkin"
)

var activityDescriptions = map[ActivityKind]string{
	ActivityMessage:  "Sent a message",
	ActivityMood:     "Updated mood",
	ActivityWellness: "Completed wellness activity",
	ActivityReminder: "Set a reminder",
	ActivityCheckin:  "Daily check-in",
}

// Valid reports whether k is one of the known activity kinds.
func (k ActivityKind) Valid() bool {
	_, ok := activityDescriptions[k]
	return ok
}

// Description is the human readable prefix used for AnalyticsData.LastActivity.
func (k ActivityKind) Description() string {
	return activityDescriptions[k]
}
