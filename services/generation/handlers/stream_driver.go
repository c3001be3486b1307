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
	"log/slog"
	"strings"
	"time"

	"github.com/AleutianAI/asiakasvastaus/services/generation/observability"
	"github.com/AleutianAI/asiakasvastaus/services/llm"
)

// =============================================================================
// Output Budgets
// =============================================================================

const (
	// defaultMaxOutputTokens caps the first round for most templates.
	defaultMaxOutputTokens = 800

	// continuationMaxOutputTokens caps the single continuation round.
	// Deliberately smaller than any first round: the continuation finishes
	// a letter, it does not write a second one.
	continuationMaxOutputTokens = 350

	// continuationTailRunes is how much accumulated text the continuation
	// round sees. Enough to locate the cut-off point without resending the
	// whole reply.
	continuationTailRunes = 2000

	// reasoningEffortLow keeps reasoning-capable models fast and cheap for
	// this workload.
	reasoningEffortLow = "low"
)

// maxOutputTokensFor returns the first-round output budget for a template.
// Complaint and upset-customer replies run longer than the rest.
func maxOutputTokensFor(templateKey string) int {
	switch templateKey {
	case "REKLAMAATIO_VIKA":
		return 1100
	case "ASIAKAS_TYYTYMATON":
		return 900
	default:
		return defaultMaxOutputTokens
	}
}

// generationFailedMessage is the only error text callers ever see on a
// stream. Provider detail stays in the logs.
const generationFailedMessage = "Generointi epäonnistui. Yritä uudelleen."

// =============================================================================
// Stream Driver
// =============================================================================

// StreamDriver runs the full generation lifecycle for one request: the first
// completion round, at most one continuation round when the first was cut
// off, and the terminal event.
//
// # Description
//
// The driver owns the completion streams it opens. On a terminal provider
// event (completed or error) it closes the upstream stream immediately
// rather than draining it. Deltas are relayed to the StreamWriter as they
// arrive; the driver never buffers the reply beyond the accumulated text it
// needs for the truncation check and the continuation tail.
//
// Continuation fires when the first round ended with finish reason "length",
// or ended with no finish reason but looks cut off mid-sentence, and the
// round produced non-blank text. A continuation is never followed by another
// continuation, whatever its own finish reason says.
//
// # Thread Safety
//
// A driver instance serves one request; it is not safe for reuse.
type StreamDriver struct {
	streamer    llm.CompletionStreamer
	model       string
	writer      StreamWriter
	metrics     *observability.GenerationMetrics
	endpoint    observability.Endpoint
	startedAt   time.Time
	sawDelta    bool
	templateKey string
}

// NewStreamDriver builds a driver for one generation request.
// metrics may be nil (tests).
func NewStreamDriver(streamer llm.CompletionStreamer, model string, writer StreamWriter) *StreamDriver {
	if streamer == nil {
		panic("NewStreamDriver: streamer must not be nil")
	}
	if writer == nil {
		panic("NewStreamDriver: writer must not be nil")
	}
	return &StreamDriver{
		streamer:  streamer,
		model:     model,
		writer:    writer,
		metrics:   observability.DefaultMetrics,
		endpoint:  observability.EndpointGenerateStream,
		startedAt: time.Now(),
	}
}

// roundResult captures what one completion round produced.
type roundResult struct {
	text         string
	finishReason string
	model        string
	failed       bool
}

// needsContinuation applies the continuation trigger to a finished round.
func needsContinuation(r roundResult) bool {
	if r.finishReason == llm.FinishReasonLength {
		return true
	}
	return r.finishReason == "" && IsLikelyTruncated(r.text)
}

// continuationMessages extends the original prompt with the continuation
// instruction and the tail of the reply so far.
func continuationMessages(messages []llm.Message, text string) []llm.Message {
	tail := text
	if runes := []rune(text); len(runes) > continuationTailRunes {
		tail = string(runes[len(runes)-continuationTailRunes:])
	}
	out := make([]llm.Message, 0, len(messages)+2)
	out = append(out, messages...)
	out = append(out,
		llm.Message{
			Role:    llm.RoleDeveloper,
			Content: "Jatka täsmälleen siitä mihin teksti jäi. Älä toista aiempaa. Kirjoita loppuun ja päätä kohteliaaseen lopetukseen.",
		},
		llm.Message{
			Role:    llm.RoleUser,
			Content: "Tässä on vastaus tähän asti:\n" + tail,
		},
	)
	return out
}

// Run drives generation to its terminal event.
//
// # Description
//
// Runs the first round with the template's output budget, evaluates the
// continuation trigger, optionally runs the continuation round, then writes
// the done event carrying the model of the last round that produced output.
//
// A provider-reported error inside a round is already relayed as the
// terminal error event by the time Run returns nil. A non-nil return means
// the stream failed before a terminal event could be written; the caller
// owns that error path.
func (d *StreamDriver) Run(ctx context.Context, messages []llm.Message, templateKey string) error {
	d.templateKey = templateKey

	first, err := d.streamRound(ctx, messages, maxOutputTokensFor(templateKey), "initial")
	if err != nil {
		return err
	}
	if first.failed {
		return nil
	}

	finalModel := first.model
	if finalModel == "" {
		finalModel = d.model
	}

	if needsContinuation(first) && strings.TrimSpace(first.text) != "" {
		if d.metrics != nil {
			d.metrics.RecordContinuation(templateKey)
		}
		cont, err := d.streamRound(ctx, continuationMessages(messages, first.text), continuationMaxOutputTokens, "continuation")
		if err != nil {
			return err
		}
		if cont.failed {
			return nil
		}
		if cont.text != "" && cont.model != "" {
			finalModel = cont.model
		}
	}

	return d.writer.WriteDone(finalModel)
}

// streamRound runs one completion call and relays its deltas.
//
// Returns a failed result (nil error) when the provider reported a stream
// error; the terminal error event has been written in that case. Returns a
// non-nil error only for failures the caller must surface itself: opening
// the stream, reading from it, or writing to the client.
func (d *StreamDriver) streamRound(ctx context.Context, input []llm.Message, maxOutputTokens int, round string) (roundResult, error) {
	var res roundResult

	if d.metrics != nil {
		d.metrics.RecordProviderRound(d.templateKey, round)
	}

	stream, err := d.streamer.Stream(ctx, llm.StreamRequest{
		Model:           d.model,
		Input:           input,
		MaxOutputTokens: maxOutputTokens,
		ReasoningEffort: reasoningEffortLow,
	})
	if err != nil {
		return res, err
	}
	defer stream.Close()

	var acc strings.Builder
	for {
		event, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			res.text = acc.String()
			return res, nil
		}
		if err != nil {
			res.text = acc.String()
			return res, err
		}

		switch event.Type {
		case llm.EventDelta:
			if event.Text == "" {
				continue
			}
			acc.WriteString(event.Text)
			if !d.sawDelta {
				d.sawDelta = true
				if d.metrics != nil {
					d.metrics.RecordTimeToFirstDelta(d.endpoint, time.Since(d.startedAt).Seconds())
				}
			}
			if err := d.writer.WriteDelta(event.Text); err != nil {
				res.text = acc.String()
				return res, err
			}

		case llm.EventCompleted:
			res.text = acc.String()
			res.finishReason = event.FinishReason
			res.model = event.Model
			// Terminal provider event; drop the stream now instead of
			// draining it to its natural end.
			stream.Close()
			return res, nil

		case llm.EventError:
			slog.Error("completion stream reported error",
				"round", round,
				"template_key", d.templateKey,
				"error", event.Err)
			if d.metrics != nil {
				d.metrics.RecordError(d.endpoint, observability.ErrorCodeLLMError)
			}
			res.text = acc.String()
			res.failed = true
			_ = d.writer.WriteError(generationFailedMessage)
			stream.Close()
			return res, nil
		}
	}
}
