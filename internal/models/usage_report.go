package models

// UsageReport is the ranked view of a UsageSnapshot, ready to be rendered.
type UsageReport struct {
	TopAPIKey      *KeyCount // nil when no qualifying request was seen
	TopAPIServices []KeyCount
	BrowserUsage   []BrowserShare
}

type KeyCount struct {
	Key   string
	Count int64
}

type BrowserShare struct {
	Browser    Browser
	Count      int64
	Percentage float64
}
