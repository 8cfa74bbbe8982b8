// Package runner drives a single h2curl request from parsed arguments to
// process output.
//
// It decides where the request body comes from (stdin or an empty source
// when stdin is a terminal), sends the request over HTTP/2, classifies the
// response status, and routes headers and body to stdout or stderr,
// colorizing JSON when stdout is a terminal.
package runner
