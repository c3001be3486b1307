// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/AleutianAI/asiakasvastaus/pkg/logging"
	"github.com/AleutianAI/asiakasvastaus/services/generation/entitlement"
	"github.com/AleutianAI/asiakasvastaus/services/generation/handlers"
	"github.com/AleutianAI/asiakasvastaus/services/generation/observability"
	"github.com/AleutianAI/asiakasvastaus/services/generation/routes"
	"github.com/AleutianAI/asiakasvastaus/services/generation/store"
	"github.com/AleutianAI/asiakasvastaus/services/llm"

	// --- OpenTelemetry imports ---
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
)

func initTracer() (func(context.Context), error) {
	ctx := context.Background()

	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint == "" {
		otelEndpoint = "asiakasvastaus-otel-collector:4317"
	}
	conn, err := grpc.NewClient(otelEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("generation-service")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.
		TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}, nil
}

func main() {
	// .env is optional; container deployments inject real env vars.
	_ = godotenv.Load()

	port := os.Getenv("GENERATION_PORT")
	if port == "" {
		port = "12310"
	}

	logger := logging.Default("generation")
	defer logger.Close()
	logger.SetAsDefault()

	// --- Init the tracer ---
	cleanup, err := initTracer()
	if err != nil {
		log.Fatalf("failed to setup the OTLP tracer: %v", err)
	}
	defer cleanup(context.Background())

	observability.InitMetrics()

	dataDir := os.Getenv("GENERATION_DATA_DIR")
	if dataDir == "" {
		dataDir = "/app/data/badger"
	}
	db, err := store.Open(store.DefaultConfig(dataDir))
	if err != nil {
		log.Fatalf("FATAL: Could not open the account store: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close the account store", "error", err)
		}
	}()

	templates := store.NewTemplateRegistry()

	log.Println("Configuring the completion streamer")
	streamer, err := llm.NewOpenAIStreamer()
	if err != nil {
		log.Fatalf("Failed to initialize the completion streamer: %v", err)
	}
	slog.Info("Using OpenAI completion backend", "model", streamer.Model())

	gate := entitlement.NewGate(db)
	generate := handlers.NewGenerateHandler(templates, db, gate, db, streamer, streamer.Model())

	router := gin.Default()
	router.Use(otelgin.Middleware("generation-service"))

	routes.SetupRoutes(router, db, templates, generate)

	log.Println("Starting the generation server on port ", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
