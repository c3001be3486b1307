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
	"unicode"
)

// closingSalutation marks a completed letter even without terminal
// punctuation ("Ystävällisin terveisin Anna").
const closingSalutation = "ystävällisin terveisin"

// salutationWindow is how far back (in runes) the salutation is searched.
const salutationWindow = 60

// sentenceTerminals are the punctuation marks that end a complete reply.
const sentenceTerminals = ".!?…"

// IsLikelyTruncated decides whether generated text was probably cut off
// mid-sentence, for rounds where the provider reported no finish reason.
//
// Policy, in order: blank text is not truncated; text ending in sentence
// punctuation is not truncated; a closing salutation within the trailing
// window is not truncated; otherwise the text is truncated iff it ends in
// a letter or digit (Finnish letters included).
//
// This is a heuristic, not a guarantee; false results in either direction
// are accepted over the cost of a needless continuation round.
func IsLikelyTruncated(text string) bool {
	trimmed := strings.TrimRightFunc(text, unicode.IsSpace)
	if trimmed == "" {
		return false
	}

	runes := []rune(trimmed)
	last := runes[len(runes)-1]
	if strings.ContainsRune(sentenceTerminals, last) {
		return false
	}

	tailStart := len(runes) - salutationWindow
	if tailStart < 0 {
		tailStart = 0
	}
	tail := strings.ToLower(string(runes[tailStart:]))
	if strings.Contains(tail, closingSalutation) {
		return false
	}

	return isReplyRune(last)
}

// isReplyRune matches [a-zA-Z0-9äöåÄÖÅ].
func isReplyRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("äöåÄÖÅ", r)
}
