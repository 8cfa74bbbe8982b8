package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/abdul-hamid-achik/h2curl/packages/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_WriteHeaders(t *testing.T) {
	headers := http.Headers{
		{Name: ":status", Value: "200"},
		{Name: "x-trace", Value: "abc"},
	}

	t.Run("no color", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(WithStdout(&out), WithNoColor(true))

		require.NoError(t, c.WriteHeaders(headers))
		assert.Equal(t, ":status: 200\nx-trace: abc\n\n", out.String())
	})

	t.Run("color", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(WithStdout(&out), WithNoColor(false))

		require.NoError(t, c.WriteHeaders(headers))
		assert.Contains(t, out.String(), "\x1b[36m")
		assert.Contains(t, out.String(), ": abc\n")
	})
}

func TestConsole_WriteJSON(t *testing.T) {
	body := []byte(`{"a":1}`)

	var plain bytes.Buffer
	require.NoError(t, NewConsole(WithStdout(&plain), WithNoColor(true)).WriteJSON(body))
	assert.Equal(t, `{"a":1}`, plain.String())

	var colored bytes.Buffer
	require.NoError(t, NewConsole(WithStdout(&colored)).WriteJSON(body))
	assert.Contains(t, colored.String(), "\x1b[")
}

func TestConsole_FormatError(t *testing.T) {
	var errOut bytes.Buffer
	c := NewConsole(WithStderr(&errOut), WithNoColor(true))

	c.FormatError(errors.New("boom"))
	assert.Equal(t, "Error: boom\n", errOut.String())
}
