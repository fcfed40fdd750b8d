package history

import "time"

func unixToTime(sec int64) time.Time {
	return time.Unix(sec, 0)
}

// Now returns the current Unix time, the timestamp callers pass to
// Record — split out so the REPL's call site reads as "record this
// submission now" rather than reaching for time.Now() directly.
func Now() int64 {
	return time.Now().Unix()
}
