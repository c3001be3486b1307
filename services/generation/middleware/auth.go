// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package middleware provides HTTP middleware for the generation service.
//
// # Authentication Flow
//
// The auth middleware extracts a session token from either the
// Authorization header or the session cookie, resolves it to an account
// through the session store, and stores the account in the Gin context
// for downstream handlers.
//
//	Request
//	   │
//	   ▼
//	SessionAuth
//	   │
//	   ├─► Extract token ("Authorization: Bearer <token>" or "session" cookie)
//	   │
//	   ├─► sessions.GetAccountBySessionToken(ctx, token)
//	   │
//	   └─► Store *store.Account in context
//	           │
//	           ▼
//	       Handler (retrieves via GetAccount)
//
// Authentication answers only "who is this"; entitlement (verified email,
// active trial or subscription) is decided per-operation by the handlers.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/asiakasvastaus/services/generation/store"
)

// =============================================================================
// Context Keys
// =============================================================================

// accountKey is the context key for storing the authenticated account.
// Using a typed key prevents collisions with other context values.
const accountKey = "asiakasvastaus_account"

// sessionCookieName is the cookie browsers carry the session token in.
const sessionCookieName = "session"

// =============================================================================
// Context Helpers
// =============================================================================

// SetAccount stores the authenticated account in the Gin context.
//
// Called by SessionAuth after successful authentication; also used by
// handler tests to fake an authenticated request.
func SetAccount(c *gin.Context, account *store.Account) {
	c.Set(accountKey, account)
}

// GetAccount retrieves the authenticated account from the Gin context.
// Returns nil when the request is not authenticated.
func GetAccount(c *gin.Context) *store.Account {
	if value, exists := c.Get(accountKey); exists {
		if account, ok := value.(*store.Account); ok {
			return account
		}
	}
	return nil
}

// =============================================================================
// Session Resolver
// =============================================================================

// SessionResolver is the narrow store contract the middleware consumes.
type SessionResolver interface {
	GetAccountBySessionToken(ctx context.Context, token string) (*store.Account, error)
}

// =============================================================================
// Auth Middleware
// =============================================================================

// SessionAuth creates a Gin middleware that authenticates requests by
// session token.
//
// # Description
//
// Extracts the session token from the Authorization header (Bearer scheme)
// or, when absent, from the session cookie, resolves it to an account, and
// stores the account in the context for downstream handlers. Requests with
// no token, an unknown token, or an expired session are rejected with 401
// before any handler runs.
//
// # Limitations
//
//   - Does not cache resolution results (resolves every request)
//
// # Thread Safety
//
// Thread-safe. The returned middleware can be used concurrently.
func SessionAuth(sessions SessionResolver) gin.HandlerFunc {
	if sessions == nil {
		panic("SessionAuth: sessions must not be nil")
	}
	return func(c *gin.Context) {
		token := extractSessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Kirjautuminen vaaditaan.",
			})
			return
		}

		account, err := sessions.GetAccountBySessionToken(c.Request.Context(), token)
		if err != nil {
			// Unknown and expired tokens land here alike; the caller gets
			// the same answer either way.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Kirjautuminen vaaditaan.",
			})
			return
		}

		SetAccount(c, account)
		c.Next()
	}
}

// =============================================================================
// Helper Functions
// =============================================================================

// extractSessionToken pulls the session token from the Authorization
// header ("Bearer <token>", scheme case-insensitive per RFC 7235) or
// falls back to the session cookie. Returns empty string when neither
// carries a token.
func extractSessionToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}
