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
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// UsageEvent is one fire-and-forget product analytics record.
type UsageEvent struct {
	ID        string            `json:"id"`
	EventName string            `json:"eventName"`
	AccountID string            `json:"accountId,omitempty"`
	Context   map[string]string `json:"context,omitempty"`
	CreatedAt int64             `json:"createdAt"`
}

// TrackEvent records a usage event. Failures are logged and swallowed;
// analytics must never affect the generation outcome.
func (s *Store) TrackEvent(ctx context.Context, eventName, accountID string, eventContext map[string]string) {
	event := UsageEvent{
		ID:        uuid.New().String(),
		EventName: eventName,
		AccountID: accountID,
		Context:   eventContext,
		CreatedAt: time.Now().UnixMilli(),
	}
	key := fmt.Sprintf("%s%020d/%s", usagePrefix, event.CreatedAt, event.ID)
	if err := s.putJSON(key, &event); err != nil {
		slog.Error("usage event tracking failed", "event", eventName, "error", err)
	}
}
