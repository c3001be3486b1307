// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes provides data structures for the generation service.
//
// This file contains the situation-template model. Templates are seeded
// once at startup and read-only at request time.
package datatypes

import "strings"

// Field kinds renderable by the template form.
const (
	FieldKindText     = "text"
	FieldKindTextarea = "textarea"
	FieldKindSelect   = "select"
)

// Well-known field keys with special handling in the prompt pipeline.
const (
	// FieldKeyCustomerMessage is optional on every template and removed
	// from the input when blank after trimming.
	FieldKeyCustomerMessage = "customerMessage"

	// FieldKeyCustomerRequest is the HYVITYSPYYNTO fallback used when no
	// customer message was supplied.
	FieldKeyCustomerRequest = "customerRequest"
)

// FieldOption is one choice of a select field.
type FieldOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// TemplateField describes one input field of a situation template.
//
// Keys are unique within a template. Required is checked against the
// normalized (trimmed) input.
type TemplateField struct {
	Key         string        `json:"key"`
	Label       string        `json:"label"`
	Kind        string        `json:"type"`
	Required    bool          `json:"required,omitempty"`
	Placeholder string        `json:"placeholder,omitempty"`
	HelpText    string        `json:"helpText,omitempty"`
	Options     []FieldOption `json:"options,omitempty"`
}

// Template is an immutable situation definition selectable by the caller.
type Template struct {
	ID             string          `json:"id"`
	Key            string          `json:"key"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Fields         []TemplateField `json:"fields"`
	BasePromptText string          `json:"basePromptText"`
	CreatedAt      int64           `json:"createdAt"`
}

// NormalizeTemplateKey maps caller-supplied template keys onto the canonical
// upper-case form. Returns "" for blank input.
func NormalizeTemplateKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
