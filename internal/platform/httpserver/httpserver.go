// Package httpserver builds the HTTP server with sane defaults for
// this project.
package httpserver

import (
	"net/http"
	"time"
)

// New returns a server with conservative timeouts. Handlers never block
// on I/O while holding the store lock, so short timeouts are safe.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
