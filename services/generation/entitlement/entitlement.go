// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package entitlement decides whether an account may generate replies.
//
// The gate combines two independently-owned checks: email verification and
// an active trial or subscription. Evaluation order is fixed: email first,
// because an unverified account should never learn about billing state.
//
// The gate performs no caching; it is re-evaluated on every generation
// request so that concurrent plan changes take effect immediately.
package entitlement

import (
	"context"
	"errors"
	"time"

	"github.com/AleutianAI/asiakasvastaus/services/generation/store"
)

// Typed gate outcomes. Anything else returned by the underlying reads
// propagates unchanged; only these two map to user-facing refusals.
var (
	ErrEmailNotVerified = errors.New("entitlement: email not verified")
	ErrPaywall          = errors.New("entitlement: no active trial or subscription")
)

// AccountReader is the narrow store contract the gate consumes.
type AccountReader interface {
	GetAccount(ctx context.Context, accountID string) (*store.Account, error)
}

// SubscriptionStatus summarizes the billing side of an account.
type SubscriptionStatus struct {
	IsActive         bool   `json:"isActive"`
	Status           string `json:"status,omitempty"`
	CurrentPeriodEnd int64  `json:"currentPeriodEnd,omitempty"`
}

// Summary is the combined entitlement state of an account.
type Summary struct {
	Trial         store.TrialStatus  `json:"trial"`
	Subscription  SubscriptionStatus `json:"subscription"`
	EmailVerified bool               `json:"emailVerified"`
	IsEntitled    bool               `json:"isEntitled"`
}

// HasActiveSubscription reports whether the billing state grants access.
// A subscription with no recorded period end counts as active.
func HasActiveSubscription(status string, currentPeriodEnd int64, now time.Time) bool {
	if status != "active" && status != "trialing" {
		return false
	}
	if currentPeriodEnd == 0 {
		return true
	}
	return currentPeriodEnd > now.UnixMilli()
}

// Gate evaluates entitlement for generation requests.
type Gate struct {
	accounts AccountReader
	now      func() time.Time
}

// NewGate builds a gate over the given account reader.
func NewGate(accounts AccountReader) *Gate {
	if accounts == nil {
		panic("NewGate: accounts must not be nil")
	}
	return &Gate{accounts: accounts, now: time.Now}
}

// Summary reads the account and computes the combined entitlement state.
func (g *Gate) Summary(ctx context.Context, accountID string) (*Summary, error) {
	account, err := g.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	now := g.now()
	trial := account.Trial(now)
	subscriptionActive := HasActiveSubscription(account.SubscriptionStatus, account.CurrentPeriodEnd, now)
	return &Summary{
		Trial: trial,
		Subscription: SubscriptionStatus{
			IsActive:         subscriptionActive,
			Status:           account.SubscriptionStatus,
			CurrentPeriodEnd: account.CurrentPeriodEnd,
		},
		EmailVerified: account.EmailVerified(),
		IsEntitled:    trial.IsActive || subscriptionActive,
	}, nil
}

// AssertCanGenerate fails with ErrEmailNotVerified or ErrPaywall when the
// account may not generate; any other failure propagates unchanged.
func (g *Gate) AssertCanGenerate(ctx context.Context, accountID string) (*Summary, error) {
	summary, err := g.Summary(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !summary.EmailVerified {
		return nil, ErrEmailNotVerified
	}
	if !summary.IsEntitled {
		return nil, ErrPaywall
	}
	return summary, nil
}
