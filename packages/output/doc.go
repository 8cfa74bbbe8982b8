// Package output renders responses for the terminal.
//
//   - FormatHeaders: "name: value" lines for a response header set
//   - ColorizeJSON: pretty-printed, syntax-colored JSON bodies
//   - Console: stdout/stderr writers with optional color
package output
