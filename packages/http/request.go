package http

import (
	"fmt"
	"io"
	"net/url"
	"strings"
)

// Pseudo-header names
const (
	HeaderMethod = ":method"
	HeaderPath   = ":path"
	HeaderStatus = ":status"
)

// AuthType selects the authorization scheme sent with --auth
type AuthType string

const (
	AuthBasic  AuthType = "Basic"
	AuthBearer AuthType = "Bearer"
)

// AuthTypes lists the accepted authorization schemes
var AuthTypes = []AuthType{AuthBasic, AuthBearer}

// ParseAuthType matches s against the known schemes, ignoring case
func ParseAuthType(s string) (AuthType, error) {
	for _, t := range AuthTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid auth type %q (allowed: Basic, Bearer)", s)
}

// Auth holds the credentials sent in the authorization header.
// Credentials are passed through verbatim, no encoding is applied.
type Auth struct {
	Type        AuthType
	Credentials string
}

// Field is a single header name/value pair
type Field struct {
	Name  string
	Value string
}

// Headers is an ordered header set. Names are lowercase.
type Headers []Field

// Get returns the first value for name, matched case-insensitively
func (h Headers) Get(name string) string {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return f.Value
		}
	}
	return ""
}

// Has reports whether a field with the given name is present
func (h Headers) Has(name string) bool {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return true
		}
	}
	return false
}

// BuildOutgoingHeaders assembles the request header set: the :method and
// :path pseudo-headers, then authorization when auth is non-nil, then any
// extra fields. Extra fields cannot replace pseudo-headers, and an extra
// authorization field is dropped when auth is set.
func BuildOutgoingHeaders(method, path string, auth *Auth, extra ...Field) Headers {
	headers := Headers{
		{Name: HeaderMethod, Value: method},
		{Name: HeaderPath, Value: path},
	}

	if auth != nil {
		headers = append(headers, Field{
			Name:  "authorization",
			Value: string(auth.Type) + " " + auth.Credentials,
		})
	}

	for _, f := range extra {
		name := strings.ToLower(f.Name)
		if strings.HasPrefix(name, ":") {
			continue
		}
		if auth != nil && name == "authorization" {
			continue
		}
		headers = append(headers, Field{Name: name, Value: f.Value})
	}

	return headers
}

// RequestPath returns the percent-encoded path and query of u
func RequestPath(u *url.URL) string {
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return path
}

// Request is a single outgoing HTTP/2 request
type Request struct {
	URL     *url.URL
	Headers Headers
	Body    io.Reader
}

func NewRequest(u *url.URL, headers Headers, body io.Reader) *Request {
	return &Request{
		URL:     u,
		Headers: headers,
		Body:    body,
	}
}

func (r *Request) Method() string {
	return r.Headers.Get(HeaderMethod)
}

func (r *Request) Path() string {
	if p := r.Headers.Get(HeaderPath); p != "" {
		return p
	}
	return RequestPath(r.URL)
}

// Origin returns scheme://host[:port] of the target
func (r *Request) Origin() string {
	return r.URL.Scheme + "://" + r.URL.Host
}

// ParseHeaderFlag parses a "name: value" header argument
func ParseHeaderFlag(s string) (Field, error) {
	name, value, ok := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Field{}, fmt.Errorf("invalid header %q (expected name:value)", s)
	}
	return Field{Name: strings.ToLower(name), Value: strings.TrimSpace(value)}, nil
}
