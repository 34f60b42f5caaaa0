package models

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string       `json:"message"`
	Context *UserContext `json:"context,omitempty"`
}

// ChatResponse carries the assistant reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// WellnessRequest is the body of POST /api/wellness.
type WellnessRequest struct {
	Mood    string       `json:"mood"`
	Context *UserContext `json:"context,omitempty"`
}

// WellnessResponse carries the generated plan.
type WellnessResponse struct {
	WellnessPlan WellnessPlan `json:"wellnessPlan"`
}

// ContextRequest is the body of the analytics and reminders routes.
type ContextRequest struct {
	Context *UserContext `json:"context,omitempty"`
}

// AnalyticsResponse carries the generated insights.
type AnalyticsResponse struct {
	Insights Insights `json:"insights"`
}

// RemindersResponse carries the suggested reminders.
type RemindersResponse struct {
	Suggestions []ReminderSuggestion `json:"suggestions"`
}

// Insights is the analytics summary produced for the dashboard.
type Insights struct {
	Pattern        string `json:"pattern"`
	Summary        string `json:"summary"`
	Recommendation string `json:"recommendation"`
}

// ReminderSuggestion is one suggested daily reminder.
type ReminderSuggestion struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Reason   string `json:"reason"`
}

// ContactRequest is a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// ContactResponse acknowledges a contact form submission.
type ContactResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	TicketID string `json:"ticketId"`
}

// DefaultReminderPeriod describes the starting reminder and activity options for a period of the day.
type DefaultReminderPeriod struct {
	Period   string
	Time     string
	Activity string
	Options  []string
}

// ReminderPeriods are the periods offered by the reminders panel.
var ReminderPeriods = []DefaultReminderPeriod{
	{Period: "Morning", Time: "09:00", Activity: "Morning meditation", Options: []string{"Morning meditation", "Exercise", "Gratitude journaling"}},
	{Period: "Afternoon", Time: "13:00", Activity: "Mindful breathing", Options: []string{"Mindful breathing", "Stretch break", "Hydration reminder"}},
	{Period: "Evening", Time: "20:00", Activity: "Digital detox", Options: []string{"Digital detox", "Evening walk", "Read a book"}},
}

// DefaultReminders returns one reminder per period using the period defaults.
func DefaultReminders() []Reminder {
	out := make([]Reminder, 0, len(ReminderPeriods))
	for _, p := range ReminderPeriods {
		out = append(out, Reminder{Period: p.Period, Time: p.Time, Activity: p.Activity})
	}
	return out
}
