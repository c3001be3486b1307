// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// ErrStreamTerminated is returned for any write attempted after the
// terminal event. Nothing may be emitted after done or error.
var ErrStreamTerminated = errors.New("sse stream already terminated")

// =============================================================================
// Interface Definition
// =============================================================================

// StreamWriter defines the contract for relaying generation progress to the
// caller as Server-Sent Events.
//
// # Description
//
// StreamWriter abstracts SSE event serialization and writing, enabling
// testability and separation from HTTP response mechanics. Implementations
// handle the SSE wire format (event: type\ndata: json\n\n) internally.
//
// The event protocol per request is: one status event, zero or more delta
// events, then exactly one terminal event (done or error). Done and error
// are mutually exclusive; implementations must reject writes after either.
//
// # Thread Safety
//
// Implementations must be safe for concurrent use by multiple goroutines.
//
// # Assumptions
//
//   - Caller has set Content-Type: text/event-stream before writing
//   - Caller has disabled response caching
type StreamWriter interface {
	// WriteStatus writes a status event, payload {"state":"<state>"}.
	WriteStatus(state string) error

	// WriteDelta writes one delta event, payload {"text":"<fragment>"}.
	// The payload is the raw fragment, not the cumulative text.
	WriteDelta(text string) error

	// WriteDone writes the terminal done event, payload {"model":"<id>"}.
	// Terminates the stream; all later writes fail with ErrStreamTerminated.
	WriteDone(model string) error

	// WriteError writes the terminal error event, payload
	// {"message":"<user-facing message>"}. Terminates the stream; all later
	// writes fail with ErrStreamTerminated.
	WriteError(message string) error

	// Terminated reports whether a terminal event has been written.
	Terminated() bool
}

// =============================================================================
// Implementation
// =============================================================================

// SetSSEHeaders sets the transport-level response contract: event-stream
// content type, no caching, connection held open until the terminal event.
func SetSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache, no-transform")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
}

// sseWriter implements StreamWriter over an http.ResponseWriter.
//
// Thread-safe via mutex. Each event is flushed immediately; the terminal
// flag guarantees done/error is emitted at most once per request.
type sseWriter struct {
	writer     http.ResponseWriter
	flusher    http.Flusher
	mu         sync.Mutex
	terminated bool
}

// NewStreamWriter creates a StreamWriter for the given ResponseWriter.
// Fails when the ResponseWriter does not support flushing.
func NewStreamWriter(w http.ResponseWriter) (StreamWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("ResponseWriter does not support http.Flusher")
	}
	return &sseWriter{writer: w, flusher: flusher}, nil
}

type statusPayload struct {
	State string `json:"state"`
}

type deltaPayload struct {
	Text string `json:"text"`
}

type donePayload struct {
	Model string `json:"model"`
}

type errorPayload struct {
	Message string `json:"message"`
}

func (w *sseWriter) WriteStatus(state string) error {
	return w.writeEvent("status", statusPayload{State: state}, false)
}

func (w *sseWriter) WriteDelta(text string) error {
	return w.writeEvent("delta", deltaPayload{Text: text}, false)
}

func (w *sseWriter) WriteDone(model string) error {
	return w.writeEvent("done", donePayload{Model: model}, true)
}

func (w *sseWriter) WriteError(message string) error {
	return w.writeEvent("error", errorPayload{Message: message}, true)
}

func (w *sseWriter) Terminated() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.terminated
}

// writeEvent serializes and writes one SSE event and flushes it. The
// terminal flag is checked and updated under the same lock so done/error
// cannot race past each other.
func (w *sseWriter) writeEvent(event string, payload any, terminal bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.terminated {
		return ErrStreamTerminated
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event, err)
	}
	if _, err := fmt.Fprintf(w.writer, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return fmt.Errorf("write %s event: %w", event, err)
	}
	w.flusher.Flush()

	if terminal {
		w.terminated = true
	}
	return nil
}
