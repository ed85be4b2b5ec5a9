package pkg

import "time"

// ParseDateFilter parses a "2006-01-02" query parameter into a *time.Time.
// Empty or malformed values are treated as no filter.
func ParseDateFilter(dateStr string) *time.Time {
	if dateStr == "" {
		return nil
	}

	const layout = "2006-01-02"
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		return nil
	}
	return &t
}

// EndOfDay shifts a date filter to the last instant of that day so "to"
// bounds are inclusive.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
