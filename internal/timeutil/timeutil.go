package timeutil

import (
	"strings"
	"time"
)

// KickoffLayout is the wire format the FPL API uses for kickoff_time.
const KickoffLayout = time.RFC3339

// displayLayout renders kickoffs for the dashboard, e.g. "Sat 19 Oct 14:00".
const displayLayout = "Mon 02 Jan 15:04"

// Unscheduled labels fixtures that have no kickoff yet.
const Unscheduled = "TBC"

// ParseKickoff parses an RFC3339 kickoff timestamp.
func ParseKickoff(value string) (time.Time, error) {
	return time.Parse(KickoffLayout, strings.TrimSpace(value))
}

// FormatKickoff formats a kickoff in UTC using the wire layout.
func FormatKickoff(t time.Time) string {
	return t.UTC().Format(KickoffLayout)
}

// DisplayKickoff renders a raw kickoff for people, in UTC.
// Empty or unparseable input yields Unscheduled.
func DisplayKickoff(raw string) string {
	t, err := ParseKickoff(raw)
	if err != nil {
		return Unscheduled
	}
	return t.UTC().Format(displayLayout)
}
