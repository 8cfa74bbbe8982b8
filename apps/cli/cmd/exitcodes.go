package cmd

// Exit codes for h2curl CLI
const (
	// ExitSuccess indicates the response status was below 400
	ExitSuccess = 0

	// ExitErrorStatus indicates the server answered with a status >= 400
	ExitErrorStatus = 1

	// ExitConfigError indicates a configuration file error
	ExitConfigError = 3

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
