// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// This file contains the generation request payload and the input
// normalization and validation rules applied before any provider call.
package datatypes

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// MaxInputFieldBytes is the maximum size of a single input value.
	// Mitigates unbounded free-text payloads.
	MaxInputFieldBytes = 32 * 1024 // 32KB

	// MaxInputFields is the maximum number of entries in the input mapping.
	MaxInputFields = 50
)

// generateValidate is the validator instance for generation datatypes.
var generateValidate = validator.New()

// =============================================================================
// Request Types
// =============================================================================

// GenerateRequest is the payload of POST /v1/generate.
//
// TemplateKey selects the situation template. Input is the raw field
// mapping from the caller; values are normalized by NormalizeInput before
// required-field validation.
type GenerateRequest struct {
	TemplateKey string         `json:"templateKey" validate:"required,min=1"`
	Input       map[string]any `json:"input"`
}

// Validate checks structural request constraints. Field-level requirements
// depend on the chosen template and are checked separately against the
// normalized input.
func (r *GenerateRequest) Validate() error {
	if err := generateValidate.Struct(r); err != nil {
		return fmt.Errorf("invalid generate request: %w", err)
	}
	if len(r.Input) > MaxInputFields {
		return fmt.Errorf("invalid generate request: too many input fields (%d > %d)", len(r.Input), MaxInputFields)
	}
	for key, value := range r.Input {
		if s, ok := value.(string); ok && len(s) > MaxInputFieldBytes {
			return fmt.Errorf("invalid generate request: field %q exceeds %d bytes", key, MaxInputFieldBytes)
		}
	}
	return nil
}

// =============================================================================
// Input Normalization
// =============================================================================

// NormalizeInput builds the generation input from the raw caller payload.
//
// Rules:
//   - non-string values are dropped
//   - string values are trimmed
//   - entries that are blank after trimming are dropped, so a blank
//     customerMessage is indistinguishable from an absent one downstream
func NormalizeInput(raw map[string]any) map[string]string {
	input := make(map[string]string, len(raw))
	for key, value := range raw {
		s, ok := value.(string)
		if !ok {
			continue
		}
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			continue
		}
		input[key] = trimmed
	}
	return input
}

// MissingFieldError reports the first required template field absent from
// the normalized input. The message is the user-facing Finnish string.
type MissingFieldError struct {
	Key   string
	Label string
}

func (e *MissingFieldError) Error() string {
	return e.Label + " on pakollinen."
}

// ValidateRequired checks every required field in template declaration order
// against the normalized input and returns a MissingFieldError for the first
// one that is absent. Deterministic, no I/O.
func ValidateRequired(fields []TemplateField, input map[string]string) error {
	for _, field := range fields {
		if !field.Required {
			continue
		}
		if input[field.Key] == "" {
			return &MissingFieldError{Key: field.Key, Label: field.Label}
		}
	}
	return nil
}
