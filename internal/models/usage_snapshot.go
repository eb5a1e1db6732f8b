package models

// UsageSnapshot is a point-in-time copy of the aggregated counters of one analysis run.
//
// The sum of the values of each of APIKeyCounts, APIServiceCounts and BrowserCounts
// equals TotalQualifyingRequests.
type UsageSnapshot struct {
	APIKeyCounts            map[string]int64
	APIServiceCounts        map[string]int64
	BrowserCounts           map[Browser]int64
	TotalQualifyingRequests int64

	// Diagnostics
	TotalLinesProcessed int64
	ExcludedLines       int64 // failed the line grammar
	FilteredLines       int64 // parsed, status other than 200
}

func NewEmptyUsageSnapshot() *UsageSnapshot {
	return &UsageSnapshot{
		APIKeyCounts:     make(map[string]int64),
		APIServiceCounts: make(map[string]int64),
		BrowserCounts:    make(map[Browser]int64),
	}
}

func (s *UsageSnapshot) IsEmpty() bool {
	return s.TotalQualifyingRequests == 0
}
