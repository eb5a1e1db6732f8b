package models

type Browser string

const (
	BrowserIE      Browser = "IE"
	BrowserFirefox Browser = "Firefox"
	BrowserSafari  Browser = "Safari"
	BrowserChrome  Browser = "Chrome"
	BrowserOpera   Browser = "Opera"
)

// KnownBrowsers lists every browser the access log grammar accepts.
var KnownBrowsers = []Browser{BrowserIE, BrowserFirefox, BrowserSafari, BrowserChrome, BrowserOpera}
