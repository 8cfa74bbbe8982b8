package http

import (
	"errors"
	"io"
)

// ErrSourceConsumed is returned when an EmptySource is read past its end
var ErrSourceConsumed = errors.New("empty source already consumed")

// EmptySource is a request body that ends before producing any bytes.
// It stands in for stdin when stdin is an interactive terminal.
type EmptySource struct {
	consumed bool
}

func NewEmptySource() *EmptySource {
	return &EmptySource{}
}

// Read returns io.EOF on the first call and ErrSourceConsumed afterwards
func (s *EmptySource) Read(p []byte) (int, error) {
	if s.consumed {
		return 0, ErrSourceConsumed
	}
	s.consumed = true
	return 0, io.EOF
}
