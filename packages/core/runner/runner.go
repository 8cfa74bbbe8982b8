package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/abdul-hamid-achik/h2curl/packages/core/config"
	"github.com/abdul-hamid-achik/h2curl/packages/http"
	"github.com/abdul-hamid-achik/h2curl/packages/output"
	"github.com/google/uuid"
)

// RequestIDHeader carries the id generated for --request-id
const RequestIDHeader = "x-request-id"

type Runner struct {
	config *Config
	logger *slog.Logger
}

// Config wires the runner to the process streams. Nil streams default to
// an empty stdin and discarded output.
type Config struct {
	Stdin            io.Reader
	Stdout           io.Writer
	Stderr           io.Writer
	StdinIsTerminal  bool
	StdoutIsTerminal bool
	Logger           *slog.Logger
	ClientOptions    []http.ClientOption
}

func NewRunner(cfg *Config) *Runner {
	if cfg == nil {
		cfg = &Config{}
	}

	c := *cfg
	if c.Stdin == nil {
		c.Stdin = http.NewEmptySource()
		c.StdinIsTerminal = false
	}
	if c.Stdout == nil {
		c.Stdout = io.Discard
	}
	if c.Stderr == nil {
		c.Stderr = io.Discard
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Runner{
		config: &c,
		logger: logger,
	}
}

// Result describes a completed exchange
type Result struct {
	StatusCode   int
	IsError      bool
	RequestID    string
	BytesWritten int64
}

// bodySource returns stdin, or an empty source when stdin is a terminal
func (r *Runner) bodySource() io.Reader {
	if r.config.StdinIsTerminal {
		return http.NewEmptySource()
	}
	return r.config.Stdin
}

// Run performs the request described by req. It returns once the response
// body has been fully written. Transport failures are returned as errors;
// error status codes are not errors and are reported through Result.
func (r *Runner) Run(ctx context.Context, req *config.Request) (*Result, error) {
	result := &Result{}

	var extra []http.Field
	if req.RequestID {
		result.RequestID = uuid.NewString()
		extra = append(extra, http.Field{Name: RequestIDHeader, Value: result.RequestID})
	}

	opts := []http.ClientOption{
		http.WithInsecure(req.Insecure),
		http.WithLogger(r.logger),
	}
	client := http.NewClient(append(opts, r.config.ClientOptions...)...)
	defer client.Close()

	httpReq := http.NewRequest(req.URL, req.OutgoingHeaders(extra...), r.bodySource())
	resp, err := client.Do(ctx, httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	status, err := resp.StatusCode()
	if err != nil {
		return nil, err
	}
	result.StatusCode = status
	result.IsError = http.IsErrorStatusCode(status)

	console := output.NewConsole(
		output.WithStdout(r.config.Stdout),
		output.WithStderr(r.config.Stderr),
		output.WithNoColor(req.NoColor || !r.config.StdoutIsTerminal),
	)

	if req.Verbose {
		if err := console.WriteHeaders(resp.Headers); err != nil {
			return nil, fmt.Errorf("writing headers: %w", err)
		}
	}

	switch {
	case result.IsError:
		result.BytesWritten, err = io.Copy(console.Stderr(), resp.Body)
	case r.config.StdoutIsTerminal && resp.IsJSON():
		result.BytesWritten, err = r.writeJSON(console, resp.Body)
	default:
		result.BytesWritten, err = io.Copy(console.Stdout(), resp.Body)
	}
	if err != nil {
		return nil, fmt.Errorf("streaming response body: %w", err)
	}

	r.logger.Debug("response complete",
		slog.Int("status", status),
		slog.Bool("error", result.IsError),
		slog.Int64("bytes", result.BytesWritten))

	return result, nil
}

// writeJSON buffers the whole body so it can be colorized in one pass
func (r *Runner) writeJSON(console *output.Console, body io.Reader) (int64, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return 0, err
	}
	if err := console.WriteJSON(data); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}
