// Package main implements the workday HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/codeGROOVE-dev/workday/pkg/api"
	"github.com/codeGROOVE-dev/workday/pkg/holidays"
	"github.com/codeGROOVE-dev/workday/pkg/workday"
)

var (
	port        = flag.String("port", "3000", "Port for web server (or set PORT)")
	holidaysURL = flag.String("holidays-url", "", "Holiday feed URL (or set HOLIDAYS_URL)")
	holidaysTTL = flag.Duration("holidays-ttl", time.Hour, "How long a fetched holiday set is reused (or set HOLIDAYS_TTL)")
	rateLimit   = flag.Int("rate-limit", 120, "Requests per minute per client IP, 0 disables (or set RATE_LIMIT)")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	version     = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("workday server v1.0.0")
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	applyEnv(logger)

	logger.Info("Server configuration",
		"port", *port,
		"verbose", *verbose,
		"holidays_url", *holidaysURL,
		"holidays_ttl", *holidaysTTL,
		"rate_limit", *rateLimit)

	remote := holidays.NewRemote(
		holidays.WithURL(*holidaysURL),
		holidays.WithTTL(*holidaysTTL),
		holidays.WithLogger(logger),
	)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := remote.Refresh(ctx); err != nil {
			logger.Warn("Holiday warm-up failed, first request will fetch", "error", err)
		}
	}()

	engine := workday.New(remote, workday.WithLogger(logger))
	server := api.New(engine, logger, api.WithRateLimit(*rateLimit))

	srv := &http.Server{
		Addr:              ":" + *port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", *port)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}

// applyEnv fills flags that were left at their defaults from the environment.
func applyEnv(logger *slog.Logger) {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if v := os.Getenv("PORT"); v != "" && !set["port"] {
		*port = v
	}
	if v := os.Getenv("HOLIDAYS_URL"); v != "" && !set["holidays-url"] {
		*holidaysURL = v
	}
	if v := os.Getenv("HOLIDAYS_TTL"); v != "" && !set["holidays-ttl"] {
		d, err := time.ParseDuration(v)
		if err != nil {
			logger.Warn("ignoring invalid HOLIDAYS_TTL", "value", v, "error", err)
		} else {
			*holidaysTTL = d
		}
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" && !set["rate-limit"] {
		n, err := strconv.Atoi(v)
		if err != nil {
			logger.Warn("ignoring invalid RATE_LIMIT", "value", v, "error", err)
		} else {
			*rateLimit = n
		}
	}
}
