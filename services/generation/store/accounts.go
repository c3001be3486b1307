// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package store

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// Trial length granted to every new account.
const TrialDuration = 7 * 24 * time.Hour

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: not found")

// Account is one registered user of the service. Billing fields mirror the
// subscription state written by the billing webhook processor.
type Account struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	EmailVerifiedAt    int64  `json:"emailVerifiedAt,omitempty"`
	TrialStartedAt     int64  `json:"trialStartedAt,omitempty"`
	TrialEndsAt        int64  `json:"trialEndsAt,omitempty"`
	SubscriptionStatus string `json:"subscriptionStatus,omitempty"`
	CurrentPeriodEnd   int64  `json:"currentPeriodEnd,omitempty"`
	CreatedAt          int64  `json:"createdAt"`
}

// EmailVerified reports whether the account completed email verification.
func (a *Account) EmailVerified() bool {
	return a.EmailVerifiedAt > 0
}

// TrialStatus is the point-in-time trial state of an account.
type TrialStatus struct {
	IsActive bool  `json:"isActive"`
	DaysLeft int   `json:"daysLeft"`
	EndsAt   int64 `json:"endsAt,omitempty"`
}

// Trial computes the trial state at time now. An account with no recorded
// trial end counts as active with the full period left; the trial is
// started lazily on first use.
func (a *Account) Trial(now time.Time) TrialStatus {
	if a.TrialEndsAt == 0 {
		return TrialStatus{IsActive: true, DaysLeft: 7}
	}
	remaining := a.TrialEndsAt - now.UnixMilli()
	daysLeft := int((remaining + int64(24*time.Hour/time.Millisecond) - 1) / int64(24*time.Hour/time.Millisecond))
	if daysLeft < 0 {
		daysLeft = 0
	}
	return TrialStatus{
		IsActive: remaining > 0,
		DaysLeft: daysLeft,
		EndsAt:   a.TrialEndsAt,
	}
}

// session links a hashed opaque token to an account.
type session struct {
	TokenHash string `json:"tokenHash"`
	AccountID string `json:"accountId"`
	ExpiresAt int64  `json:"expiresAt"`
	CreatedAt int64  `json:"createdAt"`
}

// PutAccount writes an account record.
func (s *Store) PutAccount(ctx context.Context, account *Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if account.CreatedAt == 0 {
		account.CreatedAt = time.Now().UnixMilli()
	}
	return s.putJSON(accountPrefix+account.ID, account)
}

// GetAccount reads an account by id. Returns ErrNotFound when absent.
func (s *Store) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	var account Account
	if err := s.getJSON(accountPrefix+accountID, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// StartTrial records the trial window for an account.
func (s *Store) StartTrial(ctx context.Context, accountID string, now time.Time) error {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}
	account.TrialStartedAt = now.UnixMilli()
	account.TrialEndsAt = now.Add(TrialDuration).UnixMilli()
	return s.PutAccount(ctx, account)
}

// CreateSession mints an opaque session token for the account. Only the
// SHA-256 hash of the token is stored.
func (s *Store) CreateSession(ctx context.Context, accountID string, ttl time.Duration) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(raw)
	now := time.Now()
	sess := session{
		TokenHash: hashToken(token),
		AccountID: accountID,
		ExpiresAt: now.Add(ttl).UnixMilli(),
		CreatedAt: now.UnixMilli(),
	}
	if err := s.putJSON(sessionPrefix+sess.TokenHash, &sess); err != nil {
		return "", err
	}
	return token, nil
}

// GetAccountBySessionToken resolves a raw session token to its account.
// Expired or unknown tokens return ErrNotFound.
func (s *Store) GetAccountBySessionToken(ctx context.Context, token string) (*Account, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	var sess session
	if err := s.getJSON(sessionPrefix+hashToken(token), &sess); err != nil {
		return nil, err
	}
	if sess.ExpiresAt <= time.Now().UnixMilli() {
		return nil, ErrNotFound
	}
	return s.GetAccount(ctx, sess.AccountID)
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// putJSON and getJSON are the shared single-record transaction helpers.

func (s *Store) putJSON(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *Store) getJSON(key string, out any) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	return nil
}
