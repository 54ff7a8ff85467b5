package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thekoushikdurgas/durgasos/backend/internal/infrastructure/config"
	"github.com/thekoushikdurgas/durgasos/backend/internal/infrastructure/server"
)

func main() {
	cfg := config.LoadOrDefault()

	// Flags override environment
	port := flag.String("port", cfg.Server.Port, "Server port")
	host := flag.String("host", cfg.Server.Host, "Server host")
	dev := flag.Bool("dev", cfg.Logging.Development, "Development mode (console logs, debug level)")
	level := flag.String("log-level", cfg.Logging.Level, "Log level")
	apps := flag.String("apps", cfg.Catalogue.Dir, "App catalogue directory")
	flag.Parse()

	cfg.Server.Port = *port
	cfg.Server.Host = *host
	cfg.Logging.Development = *dev
	cfg.Logging.Level = *level
	cfg.Catalogue.Dir = *apps
	if *dev && !isFlagSet("log-level") {
		cfg.Logging.Level = "debug"
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	select {
	case <-sigChan:
		log.Println("Shutting down gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Close(ctx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
