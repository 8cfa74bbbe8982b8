package http

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOutgoingHeaders(t *testing.T) {
	t.Run("without auth", func(t *testing.T) {
		headers := BuildOutgoingHeaders("GET", "/x", nil)

		assert.Equal(t, Headers{
			{Name: ":method", Value: "GET"},
			{Name: ":path", Value: "/x"},
		}, headers)
		assert.False(t, headers.Has("authorization"))
	})

	t.Run("basic auth", func(t *testing.T) {
		headers := BuildOutgoingHeaders("POST", "/y", &Auth{Type: AuthBasic, Credentials: "dXNlcjpwYXNz"})

		assert.Equal(t, "POST", headers.Get(":method"))
		assert.Equal(t, "/y", headers.Get(":path"))
		assert.Equal(t, "Basic dXNlcjpwYXNz", headers.Get("authorization"))
	})

	t.Run("bearer auth", func(t *testing.T) {
		headers := BuildOutgoingHeaders("GET", "/", &Auth{Type: AuthBearer, Credentials: "abc123"})
		assert.Equal(t, "Bearer abc123", headers.Get("authorization"))
	})

	t.Run("credentials pass through verbatim", func(t *testing.T) {
		headers := BuildOutgoingHeaders("GET", "/", &Auth{Type: AuthBasic, Credentials: "not base64 !"})
		assert.Equal(t, "Basic not base64 !", headers.Get("authorization"))
	})

	t.Run("pseudo-headers come first", func(t *testing.T) {
		headers := BuildOutgoingHeaders("GET", "/", &Auth{Type: AuthBearer, Credentials: "t"},
			Field{Name: "Accept", Value: "application/json"})

		require.Len(t, headers, 4)
		assert.Equal(t, ":method", headers[0].Name)
		assert.Equal(t, ":path", headers[1].Name)
		assert.Equal(t, "authorization", headers[2].Name)
		assert.Equal(t, Field{Name: "accept", Value: "application/json"}, headers[3])
	})

	t.Run("extra fields cannot replace pseudo-headers", func(t *testing.T) {
		headers := BuildOutgoingHeaders("GET", "/", nil, Field{Name: ":method", Value: "DELETE"})

		assert.Len(t, headers, 2)
		assert.Equal(t, "GET", headers.Get(":method"))
	})

	t.Run("auth wins over an authorization extra", func(t *testing.T) {
		headers := BuildOutgoingHeaders("GET", "/", &Auth{Type: AuthBasic, Credentials: "abc"},
			Field{Name: "Authorization", Value: "Bearer xyz"},
			Field{Name: "accept", Value: "*/*"})

		assert.Equal(t, Headers{
			{Name: ":method", Value: "GET"},
			{Name: ":path", Value: "/"},
			{Name: "authorization", Value: "Basic abc"},
			{Name: "accept", Value: "*/*"},
		}, headers)
	})

	t.Run("authorization extra is kept without auth", func(t *testing.T) {
		headers := BuildOutgoingHeaders("GET", "/", nil, Field{Name: "Authorization", Value: "Bearer xyz"})
		assert.Equal(t, "Bearer xyz", headers.Get("authorization"))
	})
}

func TestParseAuthType(t *testing.T) {
	tests := []struct {
		input   string
		want    AuthType
		wantErr bool
	}{
		{"Basic", AuthBasic, false},
		{"basic", AuthBasic, false},
		{"Bearer", AuthBearer, false},
		{"BEARER", AuthBearer, false},
		{"Digest", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAuthType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestPath(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://example.test", "/"},
		{"https://example.test/", "/"},
		{"https://example.test/ok", "/ok"},
		{"https://example.test/a%20b?q=1&r=two", "/a%20b?q=1&r=two"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, RequestPath(u))
		})
	}
}

func TestRequest_Origin(t *testing.T) {
	u, err := url.Parse("https://example.test:8443/a?b=c")
	require.NoError(t, err)

	req := NewRequest(u, BuildOutgoingHeaders("GET", RequestPath(u), nil), nil)
	assert.Equal(t, "https://example.test:8443", req.Origin())
	assert.Equal(t, "GET", req.Method())
	assert.Equal(t, "/a?b=c", req.Path())
}

func TestParseHeaderFlag(t *testing.T) {
	f, err := ParseHeaderFlag("X-Trace: abc")
	require.NoError(t, err)
	assert.Equal(t, Field{Name: "x-trace", Value: "abc"}, f)

	f, err = ParseHeaderFlag("accept:text/html;q=0.9")
	require.NoError(t, err)
	assert.Equal(t, "text/html;q=0.9", f.Value)

	_, err = ParseHeaderFlag("no-colon")
	assert.Error(t, err)

	_, err = ParseHeaderFlag(": value")
	assert.Error(t, err)
}
