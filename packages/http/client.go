package http

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"

	"golang.org/x/net/http2"
)

// ErrUnsupportedScheme is returned for URLs that are neither http nor https
var ErrUnsupportedScheme = errors.New("unsupported URL scheme")

// Client issues one HTTP/2 request per connection. https targets use TLS
// with ALPN h2; http targets use cleartext HTTP/2 with prior knowledge.
// Redirects are not followed.
type Client struct {
	insecure  bool
	rootCAs   *x509.CertPool
	logger    *slog.Logger
	transport *http2.Transport
}

type ClientOption func(*Client)

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithInsecure disables server certificate verification
func WithInsecure(insecure bool) ClientOption {
	return func(c *Client) {
		c.insecure = insecure
	}
}

// WithRootCAs replaces the system trust store
func WithRootCAs(pool *x509.CertPool) ClientOption {
	return func(c *Client) {
		c.rootCAs = pool
	}
}

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// ValidateURL checks that a URL is absolute with an http or https scheme
func ValidateURL(u *url.URL) error {
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q (only http and https are allowed)", ErrUnsupportedScheme, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL must have a host")
	}
	return nil
}

func (c *Client) newTransport(scheme string) *http2.Transport {
	if scheme == "http" {
		return &http2.Transport{
			AllowHTTP: true,
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, network, addr)
			},
		}
	}

	return &http2.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: c.insecure,
			RootCAs:            c.rootCAs,
			NextProtos:         []string{http2.NextProtoTLS},
		},
	}
}

// Do sends req and returns once response headers arrive. The request body
// keeps streaming in the background until it reaches EOF; the caller must
// close the response body and then the client.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if err := ValidateURL(req.URL); err != nil {
		return nil, err
	}

	httpReq, err := c.buildHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	c.transport = c.newTransport(req.URL.Scheme)

	c.logger.Debug("sending request",
		slog.String("origin", req.Origin()),
		slog.String("method", req.Method()),
		slog.String("path", req.Path()),
		slog.Bool("insecure", c.insecure))

	httpResp, err := c.transport.RoundTrip(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", req.Origin(), err)
	}

	resp := newResponse(httpResp)
	c.logger.Debug("received response headers",
		slog.String("status", resp.Header(HeaderStatus)),
		slog.String("proto", httpResp.Proto))

	return resp, nil
}

// buildHTTPRequest maps the header set onto a net/http request. Pseudo-headers
// become the method and request URI; the transport derives :authority and
// :scheme from the URL.
func (c *Client) buildHTTPRequest(ctx context.Context, req *Request) (*http.Request, error) {
	target, err := url.ParseRequestURI(req.Path())
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", req.Path(), err)
	}
	target.Scheme = req.URL.Scheme
	target.Host = req.URL.Host

	body := req.Body
	if body == nil {
		body = http.NoBody
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method(), target.String(), body)
	if err != nil {
		return nil, err
	}

	for _, f := range req.Headers {
		if len(f.Name) > 0 && f.Name[0] == ':' {
			continue
		}
		httpReq.Header.Add(f.Name, f.Value)
	}

	return httpReq, nil
}

// Close tears down the connection used by the last request
func (c *Client) Close() {
	if c.transport != nil {
		c.transport.CloseIdleConnections()
	}
}
