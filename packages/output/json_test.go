package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorizeJSON(t *testing.T) {
	got := ColorizeJSON([]byte(`{"message":"hello","n":1}`))

	assert.Contains(t, string(got), "\x1b[")
	assert.Contains(t, string(got), "hello")
	assert.Contains(t, string(got), "\n")
}

func TestColorizeJSON_InvalidPassesThrough(t *testing.T) {
	body := []byte(`{"unterminated": `)
	assert.Equal(t, body, ColorizeJSON(body))

	text := []byte("not json at all")
	assert.Equal(t, text, ColorizeJSON(text))
}
