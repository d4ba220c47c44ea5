// Package timex formats and parses durations and compares calendar days.
//
//	timex.HumanDuration(90 * time.Minute)   // → "1 hour, 30 minutes"
//	timex.FormatISODuration(26 * time.Hour) // → "P1DT2H"
//	timex.ToSeconds("01:30:00")             // → 5400, true
//	timex.Ago(twoHoursAgo)                  // → "2 hours ago"
//
// Duration rendering is backed by github.com/rickb777/period (ISO-8601
// periods); calendar-day comparison by github.com/rickb777/date/v2.
package timex
