package config

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/abdul-hamid-achik/h2curl/packages/http"
)

// Methods lists the accepted HTTP methods
var Methods = []string{"DELETE", "GET", "HEAD", "OPTIONS", "POST", "PUT", "PATCH"}

// Request holds the parsed arguments of one invocation
type Request struct {
	Method    string
	URL       *url.URL
	Auth      string
	AuthType  http.AuthType
	Insecure  bool
	Verbose   bool
	NoColor   bool
	RequestID bool
	Debug     bool
	Headers   []http.Field
}

// ParseMethod upper-cases method and checks it against Methods
func ParseMethod(method string) (string, error) {
	m := strings.ToUpper(method)
	for _, allowed := range Methods {
		if m == allowed {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid method %q (choices: %s)", method, strings.Join(Methods, ", "))
}

// ParseURL parses an absolute http or https URL
func ParseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if err := http.ValidateURL(u); err != nil {
		return nil, err
	}
	return u, nil
}

// AuthDescriptor returns the credentials to send, or nil when --auth was not given
func (r *Request) AuthDescriptor() *http.Auth {
	if r.Auth == "" {
		return nil
	}
	authType := r.AuthType
	if authType == "" {
		authType = http.AuthBasic
	}
	return &http.Auth{Type: authType, Credentials: r.Auth}
}

// OutgoingHeaders builds the header set for this request
func (r *Request) OutgoingHeaders(extra ...http.Field) http.Headers {
	fields := append(append([]http.Field{}, r.Headers...), extra...)
	return http.BuildOutgoingHeaders(r.Method, http.RequestPath(r.URL), r.AuthDescriptor(), fields...)
}

// ApplyDefaults fills settings from cfg that were not set on the command
// line. isSet reports whether a flag was given explicitly. Headers from
// cfg come before command-line headers, sorted by name. Certificate
// verification is never relaxed from a file; only --insecure does that.
func (r *Request) ApplyDefaults(cfg *Config, isSet func(flag string) bool) error {
	if cfg == nil {
		return nil
	}

	if !isSet("auth-type") && cfg.AuthType != "" {
		authType, err := http.ParseAuthType(cfg.AuthType)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		r.AuthType = authType
	}
	if !isSet("verbose") {
		r.Verbose = cfg.GetVerbose()
	}
	if !isSet("no-color") {
		r.NoColor = cfg.GetNoColor()
	}

	if len(cfg.Headers) > 0 {
		names := make([]string, 0, len(cfg.Headers))
		for k := range cfg.Headers {
			names = append(names, k)
		}
		sort.Strings(names)

		fields := make([]http.Field, 0, len(names)+len(r.Headers))
		for _, k := range names {
			fields = append(fields, http.Field{Name: strings.ToLower(k), Value: cfg.Headers[k]})
		}
		r.Headers = append(fields, r.Headers...)
	}

	return nil
}
