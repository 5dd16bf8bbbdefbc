package utils

import "time"

// ParseSchedule combines an appointment date (2006-01-02) and clock time
// (15:04) into a single local timestamp.
func ParseSchedule(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
}

// DateOf formats t as an appointment date string.
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}
