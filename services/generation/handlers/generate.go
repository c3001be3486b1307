// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package handlers implements the HTTP surface of the generation service:
// the streaming generate endpoint, the template listing, and the SSE
// plumbing (stream writer, completion stream driver, truncation heuristic)
// those endpoints share.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/asiakasvastaus/services/generation/datatypes"
	"github.com/AleutianAI/asiakasvastaus/services/generation/entitlement"
	"github.com/AleutianAI/asiakasvastaus/services/generation/middleware"
	"github.com/AleutianAI/asiakasvastaus/services/generation/observability"
	"github.com/AleutianAI/asiakasvastaus/services/generation/prompt"
	"github.com/AleutianAI/asiakasvastaus/services/generation/store"
	"github.com/AleutianAI/asiakasvastaus/services/llm"
)

// =============================================================================
// User-Facing Messages
// =============================================================================

// All caller-visible refusal texts are Finnish; English never leaks to the
// end user even on internal failures.
const (
	msgInvalidRequest    = "Virheellinen pyyntö."
	msgTemplateNotFound  = "Mallipohjaa ei löytynyt."
	msgOnboardingMissing = "Onboarding puuttuu."
	msgEmailNotVerified  = "Vahvista sähköpostisi ennen palvelun käyttöä. Tarkista sähköposti ja klikkaa vahvistuslinkkiä."
	msgPaywall           = "Käyttö vaatii aktiivisen tilauksen tai käynnissä olevan kokeilun."
	msgLoginRequired     = "Kirjautuminen vaaditaan."
	msgInternalError     = "Palvelussa tapahtui virhe. Yritä uudelleen."
)

// =============================================================================
// Dependencies
// =============================================================================

// ProfileReader is the store contract for organization profiles.
type ProfileReader interface {
	GetProfile(ctx context.Context, accountID string) (*datatypes.OrganizationProfile, error)
}

// EntitlementGate decides whether an account may generate.
type EntitlementGate interface {
	AssertCanGenerate(ctx context.Context, accountID string) (*entitlement.Summary, error)
}

// UsageTracker records product analytics events. Implementations must never
// fail the caller.
type UsageTracker interface {
	TrackEvent(ctx context.Context, eventName, accountID string, eventContext map[string]string)
}

// =============================================================================
// Handler
// =============================================================================

// GenerateHandler serves the streaming reply generation endpoint.
//
// # Description
//
// Runs the full request pipeline: bind and validate the request body, load
// the template, profile, and entitlement state, normalize and check the
// input fields, build the layered prompt, then hand the connection over to
// the StreamDriver as a Server-Sent Events stream.
//
// All refusals before the SSE handshake are plain JSON errors with the
// proper status code. Once streaming has started the only failure surface
// is the terminal SSE error event.
//
// # Thread Safety
//
// Safe for concurrent use; all fields are read-only after construction.
type GenerateHandler struct {
	templates *store.TemplateRegistry
	profiles  ProfileReader
	gate      EntitlementGate
	usage     UsageTracker
	streamer  llm.CompletionStreamer
	model     string
	tracer    trace.Tracer
}

// NewGenerateHandler creates the handler. usage may be nil (tests); every
// other dependency is required.
func NewGenerateHandler(
	templates *store.TemplateRegistry,
	profiles ProfileReader,
	gate EntitlementGate,
	usage UsageTracker,
	streamer llm.CompletionStreamer,
	model string,
) *GenerateHandler {
	if templates == nil {
		panic("NewGenerateHandler: templates must not be nil")
	}
	if profiles == nil {
		panic("NewGenerateHandler: profiles must not be nil")
	}
	if gate == nil {
		panic("NewGenerateHandler: gate must not be nil")
	}
	if streamer == nil {
		panic("NewGenerateHandler: streamer must not be nil")
	}
	return &GenerateHandler{
		templates: templates,
		profiles:  profiles,
		gate:      gate,
		usage:     usage,
		streamer:  streamer,
		model:     model,
		tracer:    otel.Tracer("asiakasvastaus/generation"),
	}
}

// HandleGenerateStream handles POST /v1/generate.
//
// # Description
//
// Refusal order is fixed: authentication, body shape, template existence,
// profile existence, entitlement, required fields. Only a request that
// clears all of them opens the SSE stream. The order means a caller with
// several problems always hears about the same one first.
//
// # Inputs
//
//   - Request body: {"templateKey": string, "input": object}
//
// # Outputs
//
//   - 200 with an SSE stream (status, deltas, done/error) on success
//   - 400/401/403/404 JSON errors on refusal, Finnish messages
func (h *GenerateHandler) HandleGenerateStream(c *gin.Context) {
	const endpoint = observability.EndpointGenerateStream
	started := time.Now()
	success := false

	metrics := observability.DefaultMetrics
	if metrics != nil {
		metrics.StreamStarted(endpoint)
		defer func() {
			metrics.StreamEnded(endpoint)
			metrics.RecordRequest(endpoint, success)
			metrics.RecordStreamDuration(endpoint, time.Since(started).Seconds(), success)
		}()
	}

	ctx, span := h.tracer.Start(c.Request.Context(), "generation.HandleGenerateStream")
	defer span.End()

	account := middleware.GetAccount(c)
	if account == nil {
		h.recordError(metrics, endpoint, observability.ErrorCodeUnauthorized)
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgLoginRequired})
		return
	}
	span.SetAttributes(attribute.String("account.id", account.ID))

	var req datatypes.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.recordError(metrics, endpoint, observability.ErrorCodeValidation)
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}
	if err := req.Validate(); err != nil {
		h.recordError(metrics, endpoint, observability.ErrorCodeValidation)
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}

	// Profile and entitlement reads run concurrently; their outcomes are
	// still inspected in the fixed refusal order below.
	var (
		profile    *datatypes.OrganizationProfile
		profileErr error
		gateErr    error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, profileErr = h.profiles.GetProfile(gctx, account.ID)
		return nil
	})
	g.Go(func() error {
		_, gateErr = h.gate.AssertCanGenerate(gctx, account.ID)
		return nil
	})

	template := h.templates.GetTemplateByKey(ctx, req.TemplateKey)
	_ = g.Wait()

	if template == nil {
		h.recordError(metrics, endpoint, observability.ErrorCodeNotFound)
		c.JSON(http.StatusNotFound, gin.H{"error": msgTemplateNotFound})
		return
	}
	span.SetAttributes(attribute.String("template.key", template.Key))

	if profileErr != nil {
		if errors.Is(profileErr, store.ErrNotFound) {
			h.recordError(metrics, endpoint, observability.ErrorCodeValidation)
			c.JSON(http.StatusBadRequest, gin.H{"error": msgOnboardingMissing})
			return
		}
		span.RecordError(profileErr)
		slog.Error("profile read failed", "account_id", account.ID, "error", profileErr)
		h.recordError(metrics, endpoint, observability.ErrorCodeInternal)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}

	if gateErr != nil {
		switch {
		case errors.Is(gateErr, entitlement.ErrEmailNotVerified):
			h.recordError(metrics, endpoint, observability.ErrorCodeEmailNotVerified)
			c.JSON(http.StatusForbidden, gin.H{"error": msgEmailNotVerified})
		case errors.Is(gateErr, entitlement.ErrPaywall):
			h.recordError(metrics, endpoint, observability.ErrorCodePaywall)
			c.JSON(http.StatusForbidden, gin.H{"error": msgPaywall})
		default:
			span.RecordError(gateErr)
			slog.Error("entitlement check failed", "account_id", account.ID, "error", gateErr)
			h.recordError(metrics, endpoint, observability.ErrorCodeInternal)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		}
		return
	}

	input := datatypes.NormalizeInput(req.Input)
	if err := datatypes.ValidateRequired(template.Fields, input); err != nil {
		h.recordError(metrics, endpoint, observability.ErrorCodeValidation)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Fire-and-forget analytics; never blocks or fails the generation.
	if h.usage != nil {
		usageCtx := context.WithoutCancel(ctx)
		go h.usage.TrackEvent(usageCtx, "template_used", account.ID, map[string]string{"templateKey": template.Key})
		go h.usage.TrackEvent(usageCtx, "response_created", account.ID, nil)
	}

	layers := prompt.BuildLayers(template, profile, input)
	messages := prompt.BuildMessages(layers)

	SetSSEHeaders(c.Writer)
	writer, err := NewStreamWriter(c.Writer)
	if err != nil {
		span.RecordError(err)
		h.recordError(metrics, endpoint, observability.ErrorCodeInternal)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}

	if err := writer.WriteStatus("starting"); err != nil {
		span.RecordError(err)
		slog.Error("sse handshake failed", "account_id", account.ID, "error", err)
		return
	}

	driver := NewStreamDriver(h.streamer, h.model, writer)
	if err := driver.Run(ctx, messages, template.Key); err != nil {
		span.RecordError(err)
		slog.Error("generation stream failed",
			"account_id", account.ID,
			"template_key", template.Key,
			"error", err)
		h.recordError(metrics, endpoint, observability.ErrorCodeLLMError)
		// No-op when a terminal event already went out.
		_ = writer.WriteError(generationFailedMessage)
		return
	}

	success = true
}

func (h *GenerateHandler) recordError(metrics *observability.GenerationMetrics, endpoint observability.Endpoint, code observability.ErrorCode) {
	if metrics != nil {
		metrics.RecordError(endpoint, code)
	}
}
