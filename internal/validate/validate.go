// Package validate checks request inputs before any network I/O happens.
package validate

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// IsURL reports whether raw is a syntactically valid absolute URL with a
// scheme and host. It performs no network access.
func IsURL(raw string) bool {
	if raw == "" || strings.ContainsAny(raw, " \t\r\n") {
		return false
	}
	if err := v.Var(raw, "url"); err != nil {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
