// Package http implements the HTTP transport layer of the draft keeper.
//
// It serves the page editor, the heartbeat endpoint, the rescue preview API
// and the editor login. Cross-cutting concerns such as the editor session
// cookie, request tracing, access logging and rate limiting of anonymous
// submissions are handled in this package before requests are delegated to
// the service layer.
package http
