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
	"sort"

	"github.com/google/uuid"

	"github.com/AleutianAI/asiakasvastaus/services/generation/datatypes"
)

// templateOrder is the canonical listing order shown to callers. Templates
// outside this list sort after it by Finnish title.
var templateOrder = []string{
	"ASIAKAS_TYYTYMATON",
	"HINNASTO_LASKUTUS",
	"HYVITYSPYYNTO",
	"PERUUTUS_PALAUTUS",
	"REKLAMAATIO_VIKA",
	"TOIMITUSVIIVE",
	"VARAUS_AIKATAULU",
	"VIESTI_EPASELVA",
	"PERUUTUS_YRITYS",
	"VIRHE_YRITYS",
}

// TemplateRegistry holds the seeded situation templates. Seeded once at
// construction, read-only at request time.
type TemplateRegistry struct {
	byKey   map[string]*datatypes.Template
	ordered []*datatypes.Template
}

// NewTemplateRegistry builds the registry from the built-in seed set.
func NewTemplateRegistry() *TemplateRegistry {
	return newTemplateRegistry(seedTemplates())
}

func newTemplateRegistry(templates []*datatypes.Template) *TemplateRegistry {
	orderIndex := make(map[string]int, len(templateOrder))
	for i, key := range templateOrder {
		orderIndex[key] = i
	}

	byKey := make(map[string]*datatypes.Template, len(templates))
	ordered := make([]*datatypes.Template, 0, len(templates))
	for _, t := range templates {
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		byKey[t.Key] = t
		ordered = append(ordered, t)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		first, firstKnown := orderIndex[ordered[i].Key]
		second, secondKnown := orderIndex[ordered[j].Key]
		if firstKnown && secondKnown {
			return first < second
		}
		if firstKnown != secondKnown {
			return firstKnown
		}
		return ordered[i].Title < ordered[j].Title
	})

	return &TemplateRegistry{byKey: byKey, ordered: ordered}
}

// GetTemplateByKey returns the template for a caller-supplied key, or nil
// when the normalized key is unknown or blank.
func (r *TemplateRegistry) GetTemplateByKey(ctx context.Context, key string) *datatypes.Template {
	normalized := datatypes.NormalizeTemplateKey(key)
	if normalized == "" {
		return nil
	}
	return r.byKey[normalized]
}

// ListTemplates returns all templates in canonical order.
func (r *TemplateRegistry) ListTemplates(ctx context.Context) []*datatypes.Template {
	out := make([]*datatypes.Template, len(r.ordered))
	copy(out, r.ordered)
	return out
}
