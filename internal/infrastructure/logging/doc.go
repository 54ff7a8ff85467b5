// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Domain components take a plain *zap.Logger; Component hands out a named
// child so log lines carry the component that wrote them.
//
// Example Usage:
//
//	logger := logging.FromSettings(cfg.Logging.Level, cfg.Logging.Development)
//	windows := window.NewManager(wcfg).WithLogger(logger.Component("window"))
//	logger.Info("Server starting", zap.String("port", "8000"))
package logging
