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
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/asiakasvastaus/services/llm"
)

// =============================================================================
// Test Doubles
// =============================================================================

// recordedEvent is one event captured by recordingWriter.
type recordedEvent struct {
	kind string
	text string
}

// recordingWriter captures StreamWriter calls for assertions.
type recordingWriter struct {
	events     []recordedEvent
	terminated bool
}

func (w *recordingWriter) write(kind, text string) error {
	if w.terminated {
		return ErrStreamTerminated
	}
	w.events = append(w.events, recordedEvent{kind: kind, text: text})
	return nil
}

func (w *recordingWriter) WriteStatus(state string) error { return w.write("status", state) }
func (w *recordingWriter) WriteDelta(text string) error   { return w.write("delta", text) }

func (w *recordingWriter) WriteDone(model string) error {
	if err := w.write("done", model); err != nil {
		return err
	}
	w.terminated = true
	return nil
}

func (w *recordingWriter) WriteError(message string) error {
	if err := w.write("error", message); err != nil {
		return err
	}
	w.terminated = true
	return nil
}

func (w *recordingWriter) Terminated() bool { return w.terminated }

func (w *recordingWriter) last() recordedEvent {
	if len(w.events) == 0 {
		return recordedEvent{}
	}
	return w.events[len(w.events)-1]
}

func (w *recordingWriter) deltas() string {
	var b strings.Builder
	for _, e := range w.events {
		if e.kind == "delta" {
			b.WriteString(e.text)
		}
	}
	return b.String()
}

// mockStream replays a fixed event sequence.
type mockStream struct {
	events []llm.Event
	next   int
	closed int
}

func (s *mockStream) Recv() (llm.Event, error) {
	if s.next >= len(s.events) {
		return llm.Event{}, io.EOF
	}
	e := s.events[s.next]
	s.next++
	return e, nil
}

func (s *mockStream) Close() { s.closed++ }

// mockStreamer hands out one mockStream per call and records requests.
type mockStreamer struct {
	streams  []*mockStream
	requests []llm.StreamRequest
	openErr  error
}

func (m *mockStreamer) Stream(_ context.Context, req llm.StreamRequest) (llm.CompletionStream, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	call := len(m.requests)
	m.requests = append(m.requests, req)
	if call >= len(m.streams) {
		return &mockStream{}, nil
	}
	return m.streams[call], nil
}

func deltas(texts ...string) []llm.Event {
	events := make([]llm.Event, 0, len(texts))
	for _, t := range texts {
		events = append(events, llm.Event{Type: llm.EventDelta, Text: t})
	}
	return events
}

func completed(model, finishReason string) llm.Event {
	return llm.Event{Type: llm.EventCompleted, Model: model, FinishReason: finishReason}
}

func baseMessages() []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: "SYSTEM LAYER\nohjeet"},
		{Role: llm.RoleUser, Content: "CONTEXT LAYER\nsyöte"},
	}
}

// =============================================================================
// Single Round Tests
// =============================================================================

func TestStreamDriver_SingleRoundCompletes(t *testing.T) {
	streamer := &mockStreamer{streams: []*mockStream{
		{events: append(deltas("Hei, ", "kiitos viestistänne."), completed("gpt-5-mini", "stop"))},
	}}
	writer := &recordingWriter{}
	driver := NewStreamDriver(streamer, "gpt-5-mini", writer)

	err := driver.Run(context.Background(), baseMessages(), "TOIMITUSVIIVE")
	require.NoError(t, err)

	assert.Len(t, streamer.requests, 1)
	assert.Equal(t, "Hei, kiitos viestistänne.", writer.deltas())
	assert.Equal(t, recordedEvent{kind: "done", text: "gpt-5-mini"}, writer.last())
}

func TestStreamDriver_FirstRoundBudgets(t *testing.T) {
	tests := []struct {
		templateKey string
		wantTokens  int
	}{
		{"REKLAMAATIO_VIKA", 1100},
		{"ASIAKAS_TYYTYMATON", 900},
		{"TOIMITUSVIIVE", 800},
		{"HYVITYSPYYNTO", 800},
	}

	for _, tt := range tests {
		t.Run(tt.templateKey, func(t *testing.T) {
			streamer := &mockStreamer{streams: []*mockStream{
				{events: append(deltas("Valmis vastaus."), completed("gpt-5-mini", "stop"))},
			}}
			driver := NewStreamDriver(streamer, "gpt-5-mini", &recordingWriter{})

			require.NoError(t, driver.Run(context.Background(), baseMessages(), tt.templateKey))

			require.Len(t, streamer.requests, 1)
			assert.Equal(t, tt.wantTokens, streamer.requests[0].MaxOutputTokens)
			assert.Equal(t, "low", streamer.requests[0].ReasoningEffort)
		})
	}
}

func TestStreamDriver_ClosesStreamOnCompletedEvent(t *testing.T) {
	// Events after the completed event must never be read.
	stream := &mockStream{events: append(
		append(deltas("Valmista."), completed("gpt-5-mini", "stop")),
		deltas("ei saa näkyä")...,
	)}
	streamer := &mockStreamer{streams: []*mockStream{stream}}
	writer := &recordingWriter{}
	driver := NewStreamDriver(streamer, "gpt-5-mini", writer)

	require.NoError(t, driver.Run(context.Background(), baseMessages(), "TOIMITUSVIIVE"))

	assert.GreaterOrEqual(t, stream.closed, 1)
	assert.Equal(t, "Valmista.", writer.deltas())
}

func TestStreamDriver_FallsBackToConfiguredModel(t *testing.T) {
	// EOF without a completed event leaves the round's model empty.
	streamer := &mockStreamer{streams: []*mockStream{
		{events: deltas("Kiitos yhteydenotosta.")},
	}}
	writer := &recordingWriter{}
	driver := NewStreamDriver(streamer, "gpt-5-mini", writer)

	require.NoError(t, driver.Run(context.Background(), baseMessages(), "TOIMITUSVIIVE"))

	assert.Equal(t, recordedEvent{kind: "done", text: "gpt-5-mini"}, writer.last())
}

// =============================================================================
// Continuation Tests
// =============================================================================

func TestStreamDriver_ContinuationOnLengthFinish(t *testing.T) {
	streamer := &mockStreamer{streams: []*mockStream{
		{events: append(deltas("Vastaus joka katkesi kesken ja"), completed("gpt-5-mini-a", "length"))},
		{events: append(deltas(" jatkuu loppuun asti."), completed("gpt-5-mini-b", "stop"))},
	}}
	writer := &recordingWriter{}
	driver := NewStreamDriver(streamer, "gpt-5-mini", writer)

	require.NoError(t, driver.Run(context.Background(), baseMessages(), "TOIMITUSVIIVE"))

	require.Len(t, streamer.requests, 2)
	assert.Equal(t, continuationMaxOutputTokens, streamer.requests[1].MaxOutputTokens)

	// Continuation input: original messages plus instruction plus tail.
	cont := streamer.requests[1].Input
	require.Len(t, cont, len(baseMessages())+2)
	assert.Equal(t, llm.RoleDeveloper, cont[len(cont)-2].Role)
	assert.Contains(t, cont[len(cont)-2].Content, "Jatka täsmälleen siitä mihin teksti jäi")
	assert.Equal(t, llm.RoleUser, cont[len(cont)-1].Role)
	assert.Contains(t, cont[len(cont)-1].Content, "Vastaus joka katkesi kesken ja")

	assert.Equal(t, "Vastaus joka katkesi kesken ja jatkuu loppuun asti.", writer.deltas())
	assert.Equal(t, recordedEvent{kind: "done", text: "gpt-5-mini-b"}, writer.last())
}

func TestStreamDriver_ContinuationOnMissingFinishReason(t *testing.T) {
	// EOF without a completed event and text that looks cut off.
	streamer := &mockStreamer{streams: []*mockStream{
		{events: deltas("Pahoittelemme viivästystä ja sitten")},
		{events: append(deltas(" hoidamme asian kuntoon."), completed("gpt-5-mini", "stop"))},
	}}
	writer := &recordingWriter{}
	driver := NewStreamDriver(streamer, "gpt-5-mini", writer)

	require.NoError(t, driver.Run(context.Background(), baseMessages(), "TOIMITUSVIIVE"))

	assert.Len(t, streamer.requests, 2)
	assert.Equal(t, recordedEvent{kind: "done", text: "gpt-5-mini"}, writer.last())
}

func TestStreamDriver_NoContinuationOnCompleteText(t *testing.T) {
	streamer := &mockStreamer{streams: []*mockStream{
		{events: deltas("Valmis ja kokonainen vastaus.")},
	}}
	writer := &recordingWriter{}
	driver := NewStreamDriver(streamer, "gpt-5-mini", writer)

	require.NoError(t, driver.Run(context.Background(), baseMessages(), "TOIMITUSVIIVE"))

	assert.Len(t, streamer.requests, 1)
}

func TestStreamDriver_ContinuationRunsAtMostOnce(t *testing.T) {
	// The continuation round itself hits the length cap; no third round.
	streamer := &mockStreamer{streams: []*mockStream{
		{events: append(deltas("Ensimmäinen osa joka katkesi"), completed("gpt-5-mini", "length"))},
		{events: append(deltas(" ja toinen osa joka myös katkesi"), completed("gpt-5-mini", "length"))},
	}}
	writer := &recordingWriter{}
	driver := NewStreamDriver(streamer, "gpt-5-mini", writer)

	require.NoError(t, driver.Run(context.Background(), baseMessages(), "TOIMITUSVIIVE"))

	assert.Len(t, streamer.requests, 2)
	assert.Equal(t, "done", writer.last().kind)
}

func TestStreamDriver_NoContinuationOnBlankText(t *testing.T) {
	// Length finish with nothing accumulated: a continuation would have no
	// cut-off point to resume from.
	streamer := &mockStreamer{streams: []*mockStream{
		{events: []llm.Event{completed("gpt-5-mini", "length")}},
	}}
	writer := &recordingWriter{}
	driver := NewStreamDriver(streamer, "gpt-5-mini", writer)

	require.NoError(t, driver.Run(context.Background(), baseMessages(), "TOIMITUSVIIVE"))

	assert.Len(t, streamer.requests, 1)
	assert.Equal(t, recordedEvent{kind: "done", text: "gpt-5-mini"}, writer.last())
}

func TestStreamDriver_ContinuationTailIsBounded(t *testing.T) {
	long := strings.Repeat("a", continuationTailRunes+500)
	streamer := &mockStreamer{streams: []*mockStream{
		{events: append(deltas(long), completed("gpt-5-mini", "length"))},
		{events: append(deltas(" loppu."), completed("gpt-5-mini", "stop"))},
	}}
	driver := NewStreamDriver(streamer, "gpt-5-mini", &recordingWriter{})

	require.NoError(t, driver.Run(context.Background(), baseMessages(), "TOIMITUSVIIVE"))

	require.Len(t, streamer.requests, 2)
	cont := streamer.requests[1].Input
	tailMessage := cont[len(cont)-1].Content
	assert.Equal(t,
		"Tässä on vastaus tähän asti:\n"+strings.Repeat("a", continuationTailRunes),
		tailMessage)
}

func TestStreamDriver_EmptyContinuationKeepsFirstRoundModel(t *testing.T) {
	streamer := &mockStreamer{streams: []*mockStream{
		{events: append(deltas("Katkennut vastaus ja"), completed("gpt-5-mini-a", "length"))},
		{events: []llm.Event{completed("gpt-5-mini-b", "stop")}},
	}}
	writer := &recordingWriter{}
	driver := NewStreamDriver(streamer, "gpt-5-mini", writer)

	require.NoError(t, driver.Run(context.Background(), baseMessages(), "TOIMITUSVIIVE"))

	assert.Equal(t, recordedEvent{kind: "done", text: "gpt-5-mini-a"}, writer.last())
}

// =============================================================================
// Error Path Tests
// =============================================================================

func TestStreamDriver_ProviderErrorEvent(t *testing.T) {
	streamer := &mockStreamer{streams: []*mockStream{
		{events: []llm.Event{
			{Type: llm.EventDelta, Text: "Osittainen"},
			{Type: llm.EventError, Err: "upstream 500"},
		}},
	}}
	writer := &recordingWriter{}
	driver := NewStreamDriver(streamer, "gpt-5-mini", writer)

	err := driver.Run(context.Background(), baseMessages(), "TOIMITUSVIIVE")
	require.NoError(t, err)

	assert.Len(t, streamer.requests, 1)
	assert.Equal(t, recordedEvent{kind: "error", text: generationFailedMessage}, writer.last())
	assert.True(t, writer.Terminated())
}

func TestStreamDriver_StreamOpenFailure(t *testing.T) {
	streamer := &mockStreamer{openErr: errors.New("connection refused")}
	writer := &recordingWriter{}
	driver := NewStreamDriver(streamer, "gpt-5-mini", writer)

	err := driver.Run(context.Background(), baseMessages(), "TOIMITUSVIIVE")
	require.Error(t, err)

	// The caller owns the terminal event on this path.
	assert.False(t, writer.Terminated())
}
