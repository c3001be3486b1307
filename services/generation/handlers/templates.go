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
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/asiakasvastaus/services/generation/observability"
	"github.com/AleutianAI/asiakasvastaus/services/generation/store"
)

// HandleListTemplates returns a handler for GET /v1/templates.
//
// Lists the seeded situation templates in canonical order so clients can
// render the template picker without hardcoding the set.
func HandleListTemplates(templates *store.TemplateRegistry) gin.HandlerFunc {
	if templates == nil {
		panic("HandleListTemplates: templates must not be nil")
	}
	return func(c *gin.Context) {
		if observability.DefaultMetrics != nil {
			observability.DefaultMetrics.RecordRequest(observability.EndpointListTemplates, true)
		}
		c.JSON(http.StatusOK, gin.H{
			"templates": templates.ListTemplates(c.Request.Context()),
		})
	}
}

// HealthCheck handles GET /health. Liveness only; no dependencies probed.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
