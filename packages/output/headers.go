package output

import (
	"strings"

	"github.com/abdul-hamid-achik/h2curl/packages/http"
)

// FormatHeaders renders one "name: value" line per field, in the order
// given, followed by a blank line that separates headers from the body.
func FormatHeaders(headers http.Headers) string {
	return formatHeaders(headers, func(s string) string { return s })
}

func formatHeaders(headers http.Headers, name func(string) string) string {
	var b strings.Builder
	for _, f := range headers {
		b.WriteString(name(f.Name))
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
