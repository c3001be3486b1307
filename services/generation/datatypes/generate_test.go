// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package datatypes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// GenerateRequest Validation Tests
// =============================================================================

func TestGenerateRequest_Validate(t *testing.T) {
	req := &GenerateRequest{
		TemplateKey: "TOIMITUSVIIVE",
		Input:       map[string]any{"customerMessage": "Missä tilaukseni on?"},
	}

	assert.NoError(t, req.Validate())
}

func TestGenerateRequest_Validate_MissingTemplateKey(t *testing.T) {
	req := &GenerateRequest{Input: map[string]any{}}

	assert.Error(t, req.Validate())
}

func TestGenerateRequest_Validate_TooManyFields(t *testing.T) {
	input := make(map[string]any, MaxInputFields+1)
	for i := 0; i <= MaxInputFields; i++ {
		input[strings.Repeat("k", i+1)] = "v"
	}
	req := &GenerateRequest{TemplateKey: "TOIMITUSVIIVE", Input: input}

	assert.Error(t, req.Validate())
}

func TestGenerateRequest_Validate_OversizedField(t *testing.T) {
	req := &GenerateRequest{
		TemplateKey: "TOIMITUSVIIVE",
		Input:       map[string]any{"customerMessage": strings.Repeat("a", MaxInputFieldBytes+1)},
	}

	assert.Error(t, req.Validate())
}

// =============================================================================
// NormalizeInput Tests
// =============================================================================

func TestNormalizeInput(t *testing.T) {
	raw := map[string]any{
		"customerMessage": "  Missä tilaukseni on?  ",
		"orderNumber":     "T-100",
		"blank":           "   ",
		"number":          42,
		"nested":          map[string]any{"x": "y"},
		"null":            nil,
	}

	input := NormalizeInput(raw)

	assert.Equal(t, map[string]string{
		"customerMessage": "Missä tilaukseni on?",
		"orderNumber":     "T-100",
	}, input)
}

func TestNormalizeInput_Empty(t *testing.T) {
	assert.Empty(t, NormalizeInput(nil))
	assert.Empty(t, NormalizeInput(map[string]any{}))
}

// =============================================================================
// ValidateRequired Tests
// =============================================================================

func requiredFields() []TemplateField {
	return []TemplateField{
		{Key: "first", Label: "Ensimmäinen kenttä", Required: true},
		{Key: "optional", Label: "Valinnainen kenttä"},
		{Key: "second", Label: "Toinen kenttä", Required: true},
	}
}

func TestValidateRequired_AllPresent(t *testing.T) {
	err := ValidateRequired(requiredFields(), map[string]string{
		"first":  "a",
		"second": "b",
	})

	assert.NoError(t, err)
}

// The first missing field in declaration order wins, regardless of map
// iteration order.
func TestValidateRequired_DeclarationOrder(t *testing.T) {
	err := ValidateRequired(requiredFields(), map[string]string{})

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "first", missing.Key)
	assert.Equal(t, "Ensimmäinen kenttä on pakollinen.", err.Error())
}

func TestValidateRequired_SecondFieldMissing(t *testing.T) {
	err := ValidateRequired(requiredFields(), map[string]string{"first": "a"})

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "second", missing.Key)
}

func TestValidateRequired_OptionalNeverRequired(t *testing.T) {
	fields := []TemplateField{{Key: "optional", Label: "Valinnainen"}}

	assert.NoError(t, ValidateRequired(fields, map[string]string{}))
}
