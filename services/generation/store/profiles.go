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
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AleutianAI/asiakasvastaus/services/generation/datatypes"
)

// PutProfile writes the organization profile owned by an account.
func (s *Store) PutProfile(ctx context.Context, profile *datatypes.OrganizationProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	now := time.Now().UnixMilli()
	if profile.CreatedAt == 0 {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	return s.putJSON(profilePrefix+profile.AccountID, profile)
}

// GetProfile reads the organization profile for an account and normalizes
// it on the way out: legacy industry values are remapped, enum gaps filled
// with safe defaults and the forbidden-phrase list sanitized. Rows written
// under since-removed enum values must keep generating.
func (s *Store) GetProfile(ctx context.Context, accountID string) (*datatypes.OrganizationProfile, error) {
	var profile datatypes.OrganizationProfile
	if err := s.getJSON(profilePrefix+accountID, &profile); err != nil {
		return nil, err
	}

	profile.Industry = datatypes.NormalizeIndustry(string(profile.Industry))
	if profile.CommunicationRole == "" {
		profile.CommunicationRole = datatypes.RoleCustomerService
	}
	if profile.RefundPolicy == "" {
		profile.RefundPolicy = datatypes.RefundNever
	}
	if profile.CautionLevel == "" {
		profile.CautionLevel = datatypes.CautionBalanced
	}
	profile.ForbiddenPhrases = sanitizePhrases(profile.ForbiddenPhrases)

	return &profile, nil
}

// sanitizePhrases trims entries, drops empties and caps the list.
func sanitizePhrases(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		trimmed := strings.TrimSpace(phrase)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
		if len(out) == datatypes.MaxForbiddenPhrases {
			break
		}
	}
	return out
}
