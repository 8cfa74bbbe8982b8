package output

import (
	"testing"

	"github.com/abdul-hamid-achik/h2curl/packages/http"
	"github.com/stretchr/testify/assert"
)

func TestFormatHeaders(t *testing.T) {
	headers := http.Headers{
		{Name: ":status", Value: "200"},
		{Name: "content-type", Value: "text/plain"},
	}

	got := FormatHeaders(headers)

	assert.Equal(t, ":status: 200\ncontent-type: text/plain\n\n", got)
	assert.Contains(t, got, "status: 200\n")
	assert.Contains(t, got, "content-type: text/plain\n")
}

func TestFormatHeaders_PreservesOrder(t *testing.T) {
	headers := http.Headers{
		{Name: "z-last", Value: "1"},
		{Name: "a-first", Value: "2"},
	}

	assert.Equal(t, "z-last: 1\na-first: 2\n\n", FormatHeaders(headers))
	assert.Equal(t, "z-last", headers[0].Name)
}

func TestFormatHeaders_Empty(t *testing.T) {
	assert.Equal(t, "\n", FormatHeaders(nil))
}
