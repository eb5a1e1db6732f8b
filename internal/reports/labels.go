package reports

import "fmt"

const (
	LocaleEnglish = "en"
	LocaleKorean  = "ko"
)

// Labels holds the locale-specific wording of the report. Section numbering and
// indentation do not depend on the locale.
type Labels struct {
	TopAPIKey      string
	RequestCount   string
	NoData         string
	TopAPIServices string
	BrowserUsage   string
}

var labelsByLocale = map[string]Labels{
	LocaleEnglish: {
		TopAPIKey:      "Top API key",
		RequestCount:   "requests",
		NoData:         "no data",
		TopAPIServices: "Top 3 API services",
		BrowserUsage:   "Browser usage",
	},
	LocaleKorean: {
		TopAPIKey:      "최다 호출 APIKEY",
		RequestCount:   "호출 수",
		NoData:         "데이터 없음",
		TopAPIServices: "상위 3개의 API Service ID 및 요청 수",
		BrowserUsage:   "웹 브라우저별 사용 비율",
	},
}

// LabelsFor returns the label set of locale.
func LabelsFor(locale string) (Labels, error) {
	labels, ok := labelsByLocale[locale]
	if !ok {
		return Labels{}, fmt.Errorf("unsupported report locale: %q", locale)
	}
	return labels, nil
}
