// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/asiakasvastaus/services/generation/handlers"
	"github.com/AleutianAI/asiakasvastaus/services/generation/middleware"
	"github.com/AleutianAI/asiakasvastaus/services/generation/store"
)

func SetupRoutes(router *gin.Engine, db *store.Store, templates *store.TemplateRegistry,
	generate *handlers.GenerateHandler) {

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API version 1 group; everything below requires a valid session.
	v1 := router.Group("/v1")
	v1.Use(middleware.SessionAuth(db))
	{
		v1.GET("/templates", handlers.HandleListTemplates(templates))
		v1.POST("/generate", generate.HandleGenerateStream)
	}
}
