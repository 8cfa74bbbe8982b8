package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/abdul-hamid-achik/h2curl/packages/core/config"
	"github.com/abdul-hamid-achik/h2curl/packages/core/runner"
	"github.com/abdul-hamid-achik/h2curl/packages/http"
	"github.com/abdul-hamid-achik/h2curl/packages/output"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Streams are the process streams a command reads from and writes to
type Streams struct {
	Stdin            io.Reader
	Stdout           io.Writer
	Stderr           io.Writer
	StdinIsTerminal  bool
	StdoutIsTerminal bool
	StderrIsTerminal bool
}

// SystemStreams returns the real process streams
func SystemStreams() Streams {
	return Streams{
		Stdin:            os.Stdin,
		Stdout:           os.Stdout,
		Stderr:           os.Stderr,
		StdinIsTerminal:  isTerminal(os.Stdin),
		StdoutIsTerminal: isTerminal(os.Stdout),
		StderrIsTerminal: isTerminal(os.Stderr),
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// options receives flag values for one command instance
type options struct {
	auth       string
	authType   string
	insecure   bool
	verbose    bool
	noColor    bool
	requestID  bool
	debug      bool
	headers    []string
	configPath string
	completion string
}

func newRootCmd(opts *options, streams Streams, clientOpts ...http.ClientOption) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "h2curl <method> <url>",
		Short: "Minimal HTTP/2 client",
		Long: `h2curl sends a single HTTP/2 request and streams the response.

The request body is read from stdin when it is piped. The response body
is written to stdout, or to stderr when the status code is 400 or above,
in which case h2curl exits with code 1.

Examples:
  h2curl GET https://example.com
  h2curl get https://api.example.com/users --verbose
  echo '{"name":"test"}' | h2curl POST https://api.example.com/users --auth "$TOKEN" --auth-type Bearer
  h2curl DELETE https://localhost:8443/items/1 --insecure

` + completionHelp,
		Args:              validateArgs(opts),
		ValidArgsFunction: completeArgs,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.completion != "" {
				return writeCompletion(cmd, opts.completion, cmd.OutOrStdout())
			}
			return runRequest(cmd, opts, args, streams, clientOpts)
		},
	}

	cmd.SetIn(streams.Stdin)
	cmd.SetOut(streams.Stdout)
	cmd.SetErr(streams.Stderr)
	cmd.SetVersionTemplate(versionTemplate())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	flags := cmd.Flags()
	flags.SortFlags = false

	// Request flags
	flags.StringVar(&opts.auth, "auth", "", "The authentication credentials")
	flags.StringVar(&opts.authType, "auth-type", string(http.AuthBasic), "The authentication type: Basic, Bearer")
	flags.StringArrayVarP(&opts.headers, "header", "H", nil, "Extra request header as name:value (repeatable)")
	flags.BoolVar(&opts.requestID, "request-id", false, "Send a generated x-request-id header")

	// Network flags
	flags.BoolVarP(&opts.insecure, "insecure", "k", false, "Disable the server certificate verification")

	// Output flags
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Display the HTTP response headers")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&opts.debug, "debug", false, "Log connection details to stderr")

	// Misc flags
	flags.StringVar(&opts.configPath, "config", "", "Path to a JSON or YAML defaults file")
	flags.StringVar(&opts.completion, "completion", "", "Print the completion script for a shell: bash, zsh, fish, powershell")

	_ = cmd.RegisterFlagCompletionFunc("auth-type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(http.AuthBasic), string(http.AuthBearer)}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("completion", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return completionShells, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func validateArgs(opts *options) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		validate := cobra.ExactArgs(2)
		if opts.completion != "" {
			validate = cobra.NoArgs
		}
		if err := validate(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}

// request validates and coerces the positional arguments and flag values
func (o *options) request(args []string) (*config.Request, error) {
	if len(args) != 2 {
		return nil, usageErrorf("expected <method> <url>, got %d argument(s)", len(args))
	}

	method, err := config.ParseMethod(args[0])
	if err != nil {
		return nil, &UsageError{Err: err}
	}

	u, err := config.ParseURL(args[1])
	if err != nil {
		return nil, &UsageError{Err: err}
	}

	authType, err := http.ParseAuthType(o.authType)
	if err != nil {
		return nil, &UsageError{Err: err}
	}

	headers := make([]http.Field, 0, len(o.headers))
	for _, h := range o.headers {
		f, err := http.ParseHeaderFlag(h)
		if err != nil {
			return nil, &UsageError{Err: err}
		}
		headers = append(headers, f)
	}

	return &config.Request{
		Method:    method,
		URL:       u,
		Auth:      o.auth,
		AuthType:  authType,
		Insecure:  o.insecure,
		Verbose:   o.verbose,
		NoColor:   o.noColor,
		RequestID: o.requestID,
		Debug:     o.debug,
		Headers:   headers,
	}, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runRequest(cmd *cobra.Command, opts *options, args []string, streams Streams, clientOpts []http.ClientOption) error {
	req, err := opts.request(args)
	if err != nil {
		return err
	}

	// Defaults come only from a file named with --config.
	fileConfig, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return &ExitError{Code: ExitConfigError, Err: err}
	}
	if err := req.ApplyDefaults(fileConfig, cmd.Flags().Changed); err != nil {
		return &ExitError{Code: ExitConfigError, Err: err}
	}

	logger := newLogger(streams.Stderr, req.Debug)
	r := runner.NewRunner(&runner.Config{
		Stdin:            streams.Stdin,
		Stdout:           streams.Stdout,
		Stderr:           streams.Stderr,
		StdinIsTerminal:  streams.StdinIsTerminal,
		StdoutIsTerminal: streams.StdoutIsTerminal,
		Logger:           logger,
		ClientOptions:    clientOpts,
	})

	result, err := r.Run(cmd.Context(), req)
	if err != nil {
		return &ExitError{Code: ExitNetworkError, Err: err}
	}

	if result.IsError {
		return &ExitError{Code: ExitErrorStatus, Silent: true}
	}
	return nil
}

// run executes the command for argv and returns the process exit code
func run(ctx context.Context, argv []string, streams Streams, clientOpts ...http.ClientOption) int {
	var opts options
	cmd := newRootCmd(&opts, streams, clientOpts...)
	cmd.SetArgs(argv)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || !exitErr.Silent {
		console := output.NewConsole(
			output.WithStdout(streams.Stdout),
			output.WithStderr(streams.Stderr),
			output.WithNoColor(!streams.StderrIsTerminal),
		)
		console.FormatError(err)

		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(streams.Stderr, "\n%s", cmd.UsageString())
		}
	}

	return exitCode(err)
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	os.Exit(run(context.Background(), os.Args[1:], SystemStreams()))
}
