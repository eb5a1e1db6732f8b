package parsers

import (
	"regexp"
	"strings"

	"api-usage-analytics/internal/models"
)

// accessLinePattern is the whole-line grammar of the API gateway access log:
//
//	[<status>][http://apis.daum.net/search/<serviceId>?apikey=<apiKey>&q=<query>][<browser>][<YYYY-MM-DD HH:MM:SS>]
//
// Anchored at both ends; a line either matches completely or is excluded.
var accessLinePattern = regexp.MustCompile(
	`^\[(\d{3})\]` +
		`\[http://apis\.daum\.net/search/(\w+)\?apikey=(\w+)&q=[^\]]+\]` +
		`\[(` + browserAlternation() + `)\]` +
		`\[(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\]$`,
)

func browserAlternation() string {
	names := make([]string, len(models.KnownBrowsers))
	for i, browser := range models.KnownBrowsers {
		names[i] = regexp.QuoteMeta(string(browser))
	}
	return strings.Join(names, "|")
}

const (
	groupStatusCode = 1
	groupServiceID  = 2
	groupAPIKey     = 3
	groupBrowser    = 4
	groupTimestamp  = 5
)

//go:generate mockgen -source=access_log_parser.go -destination=./mocks/access_log_parser_mock.go -package=mocks
type AccessLogParser interface {
	// Parse extracts an AccessRecord from line. ok is false when the line does not match.
	Parse(line string) (record *models.AccessRecord, ok bool)
}

type accessLogParser struct{}

func NewAccessLogParser() AccessLogParser {
	return &accessLogParser{}
}

func (p *accessLogParser) Parse(line string) (*models.AccessRecord, bool) {
	groups := accessLinePattern.FindStringSubmatch(line)
	if groups == nil {
		return nil, false
	}

	return &models.AccessRecord{
		StatusCode: groups[groupStatusCode],
		ServiceID:  groups[groupServiceID],
		APIKey:     groups[groupAPIKey],
		Browser:    models.Browser(groups[groupBrowser]),
		Timestamp:  groups[groupTimestamp],
	}, true
}
