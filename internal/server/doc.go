// Package server wires and runs the application's HTTP transport.
//
// It provides orchestration for the server lifecycle, including startup
// with port-conflict fallback, signal handling, and graceful shutdown.
package server
