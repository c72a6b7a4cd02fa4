// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the
// JSON API and the static game assets. Cross-cutting concerns such as
// request tracing, access logging, CORS, and crash recovery are handled in
// this package before requests are delegated to the service layer.
package http
