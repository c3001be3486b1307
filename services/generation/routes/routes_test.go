// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/asiakasvastaus/services/generation/datatypes"
	"github.com/AleutianAI/asiakasvastaus/services/generation/entitlement"
	"github.com/AleutianAI/asiakasvastaus/services/generation/handlers"
	"github.com/AleutianAI/asiakasvastaus/services/generation/store"
	"github.com/AleutianAI/asiakasvastaus/services/llm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// =============================================================================
// Test Setup
// =============================================================================

// stubStream completes immediately with a fixed reply.
type stubStream struct {
	events []llm.Event
	next   int
}

func (s *stubStream) Recv() (llm.Event, error) {
	if s.next >= len(s.events) {
		return llm.Event{}, io.EOF
	}
	e := s.events[s.next]
	s.next++
	return e, nil
}

func (s *stubStream) Close() {}

type stubStreamer struct{}

func (stubStreamer) Stream(context.Context, llm.StreamRequest) (llm.CompletionStream, error) {
	return &stubStream{events: []llm.Event{
		{Type: llm.EventDelta, Text: "Hei, kiitos viestistänne."},
		{Type: llm.EventCompleted, Model: "gpt-5-mini", FinishReason: "stop"},
	}}, nil
}

// routerFixture wires the full route table over an in-memory store and a
// stub completion backend, with one onboarded, entitled account.
type routerFixture struct {
	router *gin.Engine
	token  string
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	ctx := context.Background()

	db, err := store.Open(store.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	account := &store.Account{
		Email:           "testi@example.fi",
		EmailVerifiedAt: time.Now().Add(-time.Hour).UnixMilli(),
		TrialEndsAt:     time.Now().Add(48 * time.Hour).UnixMilli(),
	}
	require.NoError(t, db.PutAccount(ctx, account))
	require.NoError(t, db.PutProfile(ctx, &datatypes.OrganizationProfile{
		AccountID:   account.ID,
		CompanyName: "Testi Oy",
		Industry:    datatypes.IndustryCommerce,
		DefaultTone: datatypes.ToneNeutral,
	}))

	token, err := db.CreateSession(ctx, account.ID, time.Hour)
	require.NoError(t, err)

	templates := store.NewTemplateRegistry()
	generate := handlers.NewGenerateHandler(
		templates, db, entitlement.NewGate(db), db, stubStreamer{}, "gpt-5-mini")

	router := gin.New()
	SetupRoutes(router, db, templates, generate)
	return &routerFixture{router: router, token: token}
}

func (f *routerFixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	f.router.ServeHTTP(rec, req)
	return rec
}

// =============================================================================
// Route Tests
// =============================================================================

func TestRoutes_Health(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do("GET", "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_Metrics(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do("GET", "/metrics", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_TemplatesRequireAuth(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, http.StatusUnauthorized, f.do("GET", "/v1/templates", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, f.do("GET", "/v1/templates", "bogus", "").Code)
}

func TestRoutes_TemplatesWithSession(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do("GET", "/v1/templates", f.token, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOIMITUSVIIVE")
}

func TestRoutes_GenerateRequiresAuth(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do("POST", "/v1/generate", "", `{"templateKey":"TOIMITUSVIIVE","input":{}}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_GenerateEndToEnd(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do("POST", "/v1/generate", f.token,
		`{"templateKey":"TOIMITUSVIIVE","input":{"customerMessage":"Missä tilaukseni viipyy?"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "event: status")
	assert.Contains(t, body, "event: delta")
	assert.Contains(t, body, "event: done\ndata: {\"model\":\"gpt-5-mini\"}")
}
