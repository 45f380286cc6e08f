package utils

import "time"

// ReadingLayout is how a reading timestamp is shown to users
const ReadingLayout = "02.01.2006 15:04"

// SameDay reports whether a and b fall on the same calendar date in loc
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// FormatReadingTime renders t in loc using ReadingLayout
func FormatReadingTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(ReadingLayout)
}
