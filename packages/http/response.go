package http

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
)

// IsErrorStatusCode reports whether code is a client or server error.
// There is no upper bound: 600 and above are errors too.
func IsErrorStatusCode(code int) bool {
	return code >= 400
}

// ParseStatus extracts the :status pseudo-header as an integer
func ParseStatus(h Headers) (int, error) {
	if !h.Has(HeaderStatus) {
		return 0, fmt.Errorf("response has no %s header", HeaderStatus)
	}
	raw := h.Get(HeaderStatus)
	code, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s header %q: %w", HeaderStatus, raw, err)
	}
	return code, nil
}

type Response struct {
	Headers Headers
	Body    io.ReadCloser
}

func newResponse(resp *http.Response) *Response {
	return &Response{
		Headers: responseHeaders(resp),
		Body:    resp.Body,
	}
}

// responseHeaders rebuilds the header set with :status first. The transport
// hands fields over as a map, so names are sorted to keep output stable.
func responseHeaders(resp *http.Response) Headers {
	names := make([]string, 0, len(resp.Header))
	for k := range resp.Header {
		names = append(names, k)
	}
	sort.Strings(names)

	headers := Headers{{Name: HeaderStatus, Value: strconv.Itoa(resp.StatusCode)}}
	for _, k := range names {
		for _, v := range resp.Header[k] {
			headers = append(headers, Field{Name: strings.ToLower(k), Value: v})
		}
	}
	return headers
}

func (r *Response) StatusCode() (int, error) {
	return ParseStatus(r.Headers)
}

func (r *Response) Header(key string) string {
	return r.Headers.Get(key)
}

func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

// IsJSON reports whether the content type names a JSON media type,
// including structured suffixes such as application/problem+json.
func (r *Response) IsJSON() bool {
	return IsJSONContentType(r.ContentType())
}

func IsJSONContentType(ct string) bool {
	mediaType, _, _ := strings.Cut(strings.ToLower(ct), ";")
	mediaType = strings.TrimSpace(mediaType)
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
