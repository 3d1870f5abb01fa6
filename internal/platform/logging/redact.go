package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders are lowercase HTTP header names that carry credentials.
// The request logging middleware consults IsSensitiveHeader and the masq
// layer below filters the same names when they appear as attribute keys.
var sensitiveHeaders = []string{
	"authorization",
	"proxy-authorization",
	"x-api-key",
	"cookie",
	"set-cookie",
}

// sensitiveFields are attribute keys filtered in every logger. Entity fields
// with these names are filtered too when a payload is logged as a group.
var sensitiveFields = []string{"password", "secret", "token"}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Ten characters per segment keeps version strings like 1.2.3 intact.
	jwtPattern          = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// IsSensitiveHeader reports whether the named header must not be logged.
func IsSensitiveHeader(name string) bool {
	name = strings.ToLower(name)
	for _, h := range sensitiveHeaders {
		if h == name {
			return true
		}
	}
	return false
}

// newRedactAttr builds the masq ReplaceAttr hook. extra adds deployment
// specific field names, typically entity attributes such as "ssn".
func newRedactAttr(extra []string) func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveHeaders)+len(sensitiveFields)+len(extra)+5)

	for _, name := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range extra {
		if name = strings.TrimSpace(name); name != "" {
			opts = append(opts, masq.WithFieldName(name))
		}
	}

	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}
