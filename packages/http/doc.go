// Package http provides the HTTP/2 client used by h2curl.
//
// It wraps golang.org/x/net/http2 with:
//   - Outgoing header construction (pseudo-headers and authorization)
//   - TLS and cleartext (prior knowledge) HTTP/2 connections
//   - Streaming request and response bodies
//   - Status code classification
package http
