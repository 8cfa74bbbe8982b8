package output

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/h2curl/packages/http"
	"github.com/fatih/color"
)

// Console writes response parts to stdout and stderr
type Console struct {
	stdout  io.Writer
	stderr  io.Writer
	noColor bool
}

type ConsoleOption func(*Console)

func NewConsole(opts ...ConsoleOption) *Console {
	c := &Console{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithStdout(w io.Writer) ConsoleOption {
	return func(c *Console) {
		c.stdout = w
	}
}

func WithStderr(w io.Writer) ConsoleOption {
	return func(c *Console) {
		c.stderr = w
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(c *Console) {
		c.noColor = nc
	}
}

func (c *Console) Stdout() io.Writer {
	return c.stdout
}

func (c *Console) Stderr() io.Writer {
	return c.stderr
}

func (c *Console) NoColor() bool {
	return c.noColor
}

func (c *Console) paint(attrs ...color.Attribute) *color.Color {
	p := color.New(attrs...)
	if c.noColor {
		p.DisableColor()
	} else {
		p.EnableColor()
	}
	return p
}

// WriteHeaders writes the formatted header set to stdout, field names in cyan
func (c *Console) WriteHeaders(headers http.Headers) error {
	cyan := c.paint(color.FgCyan).SprintFunc()
	_, err := io.WriteString(c.stdout, formatHeaders(headers, func(s string) string { return cyan(s) }))
	return err
}

// WriteJSON writes a buffered JSON body to stdout, colorized unless color is off
func (c *Console) WriteJSON(body []byte) error {
	if !c.noColor {
		body = ColorizeJSON(body)
	}
	_, err := c.stdout.Write(body)
	return err
}

func (c *Console) FormatError(err error) {
	red := c.paint(color.FgRed).SprintFunc()
	fmt.Fprintf(c.stderr, "%s %v\n", red("Error:"), err)
}
