// Package cmd implements the h2curl command line using Cobra.
//
// Usage:
//
//	h2curl <method> <url> [flags]
//
// The request body is read from stdin when it is piped. The response body
// goes to stdout, or to stderr when the status is 400 or above, in which
// case the process exits with code 1.
package cmd
