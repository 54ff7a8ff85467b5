/*
Package monitoring provides metrics collection for the window manager.

# Overview

This package implements Prometheus-based metrics collection for the backend
service, tracking HTTP requests, window registry operations, pointer
gestures, desktops and WebSocket sessions.

Each Metrics value owns its own registry, so tests can build as many as they
like without duplicate registration panics.

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Record custom metrics
	metrics.SetWindowsOpen(5)
	metrics.RecordWindowOp("snap", "applied")

	// Time operations
	timer := monitoring.NewTimer(metrics, "shell", "open_app")
	// ... perform operation ...
	timer.Stop("applied")

# Metrics Endpoint

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
