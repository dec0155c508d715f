// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
)

// bufferedResponseWriter is a decorator around [http.ResponseWriter] that
// holds back everything the inner handlers produce. The status code and the
// body bytes accumulate in memory instead of being sent to the client, so an
// outer middleware can inspect the complete response and then replay it
// unchanged with [bufferedResponseWriter.flush].
//
// Headers are not intercepted: inner handlers write into the underlying
// writer's header map, and the standard library only transmits that map when
// WriteHeader is finally called on the real writer during flush. Exact bytes
// and headers therefore survive buffering.
//
// bufferedResponseWriter ensures that WriteHeader is honoured exactly once:
// subsequent calls are silently ignored, mirroring the behaviour documented
// by the [http.ResponseWriter] interface.
type bufferedResponseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	// It is zero until WriteHeader (or an implicit WriteHeader via Write) is called.
	status int

	// wroteHeader reports whether WriteHeader has already been called.
	wroteHeader bool

	// body accumulates every byte the inner handlers wrote, in order.
	body bytes.Buffer
}

func newBufferedResponseWriter(w http.ResponseWriter) *bufferedResponseWriter {
	return &bufferedResponseWriter{ResponseWriter: w}
}

// WriteHeader records the status code without forwarding it. Repeated calls
// are no-ops, matching the contract of the standard library's response
// writer.
func (w *bufferedResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
}

// Write appends b to the internal buffer. If WriteHeader has not been called
// before Write, it implicitly records [http.StatusOK], matching the
// behaviour of the standard library's response writer.
func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.body.Write(b)
}

// Status returns the recorded status code, defaulting to 200 when the inner
// handlers finished without writing anything.
func (w *bufferedResponseWriter) Status() int {
	if !w.wroteHeader {
		return http.StatusOK
	}
	return w.status
}

// Size returns the number of buffered body bytes.
func (w *bufferedResponseWriter) Size() int {
	return w.body.Len()
}

// BodyString returns the buffered body as text for logging.
func (w *bufferedResponseWriter) BodyString() string {
	return w.body.String()
}

// flush replays the captured response to the underlying writer: first the
// status line (which also transmits the accumulated header map), then the
// exact body bytes.
func (w *bufferedResponseWriter) flush() error {
	w.ResponseWriter.WriteHeader(w.Status())
	_, err := w.ResponseWriter.Write(w.body.Bytes())
	return err
}
