package log

import (
	"log/slog"
	"net/url"
)

// URL returns an attribute holding rawURL with its credentials masked.
func URL(name string, rawURL string) slog.Attr {
	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		return slog.String(name, rawURL)
	}

	masked := *u
	masked.User = url.UserPassword("xxx", "xxx")

	return slog.String(name, masked.String())
}
