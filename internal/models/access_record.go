package models

// StatusOK is the only status code counted toward usage statistics.
const StatusOK = "200"

// AccessRecord holds the fields extracted from one well-formed access log line.
//
// Example line:
//
//	[200][http://apis.daum.net/search/book?apikey=abc123&q=test][Chrome][2024-01-01 10:00:00]
//
// yields StatusCode "200", ServiceID "book", APIKey "abc123", Browser Chrome and
// Timestamp "2024-01-01 10:00:00".
type AccessRecord struct {
	StatusCode string
	ServiceID  string
	APIKey     string
	Browser    Browser
	Timestamp  string
}

// IsQualifying reports whether the record counts toward usage statistics.
func (r *AccessRecord) IsQualifying() bool {
	return r.StatusCode == StatusOK
}

// AccessLine is one raw line of the access log with its 1-based position.
type AccessLine struct {
	Number int64
	Text   string
}
