package domain

const (
	CriticalSystolic  = 140
	CriticalDiastolic = 90
)

// IsCritical flags a reading on read paths (patient summaries and histories).
// The bounds are exclusive: 140/90 itself is not critical.
func IsCritical(sys, dia int) bool {
	return sys > CriticalSystolic || dia > CriticalDiastolic
}

// NeedsAttention decides whether the chat reply after saving a reading
// carries a warning. Unlike IsCritical the bounds are inclusive, so 140/90
// already warns.
func NeedsAttention(sys, dia int) bool {
	return sys >= CriticalSystolic || dia >= CriticalDiastolic
}
