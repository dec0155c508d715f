// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the HTTP (or HTTPS) server lifecycle,
// including startup, signal handling and graceful shutdown. When TLS is
// configured an additional plain-HTTP listener is started that permanently
// redirects clients to the secure address.
package server
