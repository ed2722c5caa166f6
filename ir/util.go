package ir

import "time"

func timeMonth(v int64) time.Month {
	return time.Month(v)
}

func durationMinutes(n int64) time.Duration {
	return time.Duration(n) * time.Minute
}
