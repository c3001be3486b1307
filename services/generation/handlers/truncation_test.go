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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// IsLikelyTruncated Tests
// =============================================================================

func TestIsLikelyTruncated_CompleteReplies(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"period", "Kiitos paljon."},
		{"exclamation", "Hienoa!"},
		{"question", "Sopiiko tämä teille?"},
		{"ellipsis rune", "Palaamme asiaan…"},
		{"trailing whitespace after period", "Kiitos paljon.\n\n"},
		{"salutation without punctuation", "Pahoittelemme viivästystä.\n\nYstävällisin terveisin\nAnna"},
		{"salutation mixed case", "Hoidamme asian.\n\nYSTÄVÄLLISIN TERVEISIN\nMatti Meikäläinen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IsLikelyTruncated(tt.text))
		})
	}
}

func TestIsLikelyTruncated_CutOffReplies(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"mid sentence", "Pahoittelemme viivästystä ja sitten"},
		{"ends in digit", "Tilauksenne numero on 12345"},
		{"ends in finnish letter", "Kiitos kärsivällisyydestä"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, IsLikelyTruncated(tt.text), "expected truncated: %q", tt.text)
		})
	}
}

func TestIsLikelyTruncated_BlankText(t *testing.T) {
	assert.False(t, IsLikelyTruncated(""))
	assert.False(t, IsLikelyTruncated("   \n\t  "))
}

// Endings that are neither sentence terminals nor reply runes (commas,
// closing parentheses, quotes) are treated as complete.
func TestIsLikelyTruncated_NonReplyRuneEnding(t *testing.T) {
	assert.False(t, IsLikelyTruncated("Hei,"))
	assert.False(t, IsLikelyTruncated("Palautus onnistuu (ehtojen mukaan)"))
	assert.False(t, IsLikelyTruncated(`Hän sanoi "kiitos"`))
}

// The salutation only neutralizes the check when it sits near the end.
func TestIsLikelyTruncated_SalutationOutsideWindow(t *testing.T) {
	text := "Ystävällisin terveisin mainittiin jo alussa. " + strings.Repeat("lisätietoa tulee vielä ", 10) + "ja lopuksi"
	assert.True(t, IsLikelyTruncated(text))
}

func TestIsLikelyTruncated_SalutationInsideWindow(t *testing.T) {
	text := strings.Repeat("Käsittelemme palautustanne. ", 10) + "Ystävällisin terveisin\nAnna"
	assert.False(t, IsLikelyTruncated(text))
}
