package queue

// CounterBases are the first display numbers handed out each day for
// each service class. Counters reset at local midnight.
type CounterBases struct {
	Regular  int
	Priority int
}

var DefaultCounterBases = CounterBases{
	Regular:  1001,
	Priority: 1,
}

// NextCounter returns the display counter for the n-th ticket issued
// today (zero-based) of a class.
func (b CounterBases) NextCounter(priority bool, issuedToday int64) int {
	if priority {
		return b.Priority + int(issuedToday)
	}
	return b.Regular + int(issuedToday)
}
