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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/asiakasvastaus/services/generation/datatypes"
)

// =============================================================================
// Registry Tests
// =============================================================================

func TestNewTemplateRegistry_SeedsAllTemplates(t *testing.T) {
	registry := NewTemplateRegistry()
	templates := registry.ListTemplates(context.Background())

	require.Len(t, templates, len(templateOrder))

	keys := make([]string, len(templates))
	for i, tpl := range templates {
		keys[i] = tpl.Key
		assert.NotEmpty(t, tpl.ID, "template %s has no id", tpl.Key)
		assert.NotEmpty(t, tpl.Title, "template %s has no title", tpl.Key)
		assert.NotEmpty(t, tpl.BasePromptText, "template %s has no base prompt", tpl.Key)
	}
	assert.Equal(t, templateOrder, keys)
}

func TestGetTemplateByKey(t *testing.T) {
	registry := NewTemplateRegistry()
	ctx := context.Background()

	tpl := registry.GetTemplateByKey(ctx, "TOIMITUSVIIVE")
	require.NotNil(t, tpl)
	assert.Equal(t, "TOIMITUSVIIVE", tpl.Key)
}

func TestGetTemplateByKey_Normalizes(t *testing.T) {
	registry := NewTemplateRegistry()
	ctx := context.Background()

	assert.NotNil(t, registry.GetTemplateByKey(ctx, "  toimitusviive  "))
	assert.NotNil(t, registry.GetTemplateByKey(ctx, "Reklamaatio_Vika"))
}

func TestGetTemplateByKey_Unknown(t *testing.T) {
	registry := NewTemplateRegistry()
	ctx := context.Background()

	assert.Nil(t, registry.GetTemplateByKey(ctx, "EI_OLEMASSA"))
	assert.Nil(t, registry.GetTemplateByKey(ctx, ""))
	assert.Nil(t, registry.GetTemplateByKey(ctx, "   "))
}

// =============================================================================
// Seed Content Tests
// =============================================================================

// Every consumer-facing template carries a free-text customer message
// field; the business-initiated templates do not require one.
func TestSeedTemplates_CustomerMessageNeverRequired(t *testing.T) {
	for _, tpl := range seedTemplates() {
		for _, field := range tpl.Fields {
			if field.Key == datatypes.FieldKeyCustomerMessage {
				assert.False(t, field.Required,
					"customerMessage must stay optional on %s", tpl.Key)
			}
		}
	}
}

func TestSeedTemplates_CancellationReasonRequired(t *testing.T) {
	registry := NewTemplateRegistry()
	tpl := registry.GetTemplateByKey(context.Background(), "PERUUTUS_YRITYS")
	require.NotNil(t, tpl)

	var found bool
	for _, field := range tpl.Fields {
		if field.Key == "cancellationReason" {
			found = true
			assert.True(t, field.Required)
		}
	}
	assert.True(t, found)
}

func TestSeedTemplates_UniqueKeys(t *testing.T) {
	seen := map[string]bool{}
	for _, tpl := range seedTemplates() {
		assert.False(t, seen[tpl.Key], "duplicate template key %s", tpl.Key)
		seen[tpl.Key] = true
	}
}
