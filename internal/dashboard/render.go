package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/benvon/youthwell/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("49")).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("43"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117")).
			Bold(true)

	assistantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("120")).
			Bold(true)

	scoreGoodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	scoreMidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	scoreLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)

const scoreBarWidth = 20

// ScoreBar draws score on a 0..10 bar.
func ScoreBar(score float64) string {
	score = models.ClampMoodScore(score)
	filled := int(score / models.MaxMoodScore * scoreBarWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", scoreBarWidth-filled)

	style := scoreLowStyle
	switch {
	case score >= 7:
		style = scoreGoodStyle
	case score >= 4:
		style = scoreMidStyle
	}
	return style.Render(bar) + " " + valueStyle.Render(fmt.Sprintf("%.1f/10", score))
}

func row(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-20s", label)) + valueStyle.Render(value)
}

func card(title string, lines ...string) string {
	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render(title), body))
}

// RenderAnalytics draws the counters card.
func RenderAnalytics(a models.AnalyticsData) string {
	return card("Wellness Analytics",
		labelStyle.Render(fmt.Sprintf("%-20s", "Mood score"))+ScoreBar(a.MoodScore),
		row("Daily check-ins", fmt.Sprint(a.DailyCheckins)),
		row("Wellness streak", fmt.Sprintf("%d days", a.WellnessStreak)),
		row("Community support", fmt.Sprint(a.CommunitySupport)),
		row("Messages", fmt.Sprint(a.TotalMessages)),
		row("Wellness activities", fmt.Sprint(a.WellnessActivities)),
		row("Reminders set", fmt.Sprint(a.RemindersSet)),
		row("Mood changes", fmt.Sprint(a.MoodChanges)),
		dimStyle.Render(a.LastActivity),
	)
}

// RenderInsights draws the model insights card.
func RenderInsights(in models.Insights) string {
	return card("Insights",
		row("Pattern", in.Pattern),
		row("Summary", in.Summary),
		row("Recommendation", in.Recommendation),
	)
}

// RenderPlan draws the wellness plan for mood.
func RenderPlan(mood models.Mood, plan models.WellnessPlan) string {
	title := "Wellness Plan"
	if mood != "" {
		title = fmt.Sprintf("%s %s Wellness Plan", mood.Emoji(), mood.Label())
	}
	return card(title,
		labelStyle.Render("🧘 Meditation"),
		plan.Meditation,
		"",
		labelStyle.Render("💭 Affirmation"),
		fmt.Sprintf("“%s”", plan.Affirmation),
		"",
		labelStyle.Render("🎨 Activity"),
		plan.Activity,
	)
}

// RenderMoods lists the picker choices.
func RenderMoods(selected models.Mood) string {
	parts := make([]string, 0, len(models.AllMoods))
	for _, m := range models.AllMoods {
		label := m.Emoji() + " " + m.Label()
		if m == selected {
			label = valueStyle.Render("[" + label + "]")
		} else {
			label = dimStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

// RenderChat draws the conversation, newest last.
func RenderChat(history []models.ChatMessage) string {
	if len(history) == 0 {
		return dimStyle.Render("No messages yet.")
	}
	var b strings.Builder
	for i, m := range history {
		if i > 0 {
			b.WriteString("\n\n")
		}
		who := assistantStyle.Render("YouthWell")
		if m.IsUser {
			who = userStyle.Render("You")
		}
		b.WriteString(who + " " + dimStyle.Render(m.Timestamp.Local().Format("15:04")) + "\n")
		b.WriteString(m.Text)
	}
	return b.String()
}

// RenderReminders draws the reminder schedule.
func RenderReminders(list []models.Reminder) string {
	lines := make([]string, 0, len(list))
	for _, r := range list {
		lines = append(lines, row(r.Period, r.Time+"  "+r.Activity))
	}
	if len(lines) == 0 {
		lines = append(lines, dimStyle.Render("No reminders set."))
	}
	return card("Daily Reminders", lines...)
}

// RenderSuggestions draws suggested reminders.
func RenderSuggestions(list []models.ReminderSuggestion) string {
	lines := make([]string, 0, len(list)*2)
	for _, s := range list {
		lines = append(lines, row(s.Time, s.Activity), dimStyle.Render("  "+s.Reason))
	}
	return card("Suggested Reminders", lines...)
}
