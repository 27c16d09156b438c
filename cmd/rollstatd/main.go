// Command rollstatd serves the rollstat aggregator over HTTP: POST
// /add_batch to ingest a batch of values for a symbol, GET /stats to query
// one window's statistics.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joeycumines/logiface"
	islog "github.com/joeycumines/logiface-slog"

	rollstat "github.com/joeycumines/go-rollstat"
	"github.com/joeycumines/go-rollstat/internal/httpapi"
	"github.com/joeycumines/go-rollstat/internal/registry"
)

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	numLevels := flag.Int("levels", 8, "number of geometric window levels (L)")
	radix := flag.Int("radix", 10, "geometric ladder radix (R)")
	flag.Parse()

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := logiface.New(islog.NewLogger(handler))

	reg := registry.New(*numLevels, *radix, rollstat.WithLogger(logger))

	api := &httpapi.Handler{Registry: reg, Logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /add_batch", api.AddBatch)
	mux.HandleFunc("GET /stats", api.Stats)

	server := &http.Server{Addr: *addr, Handler: mux}

	logger.Info().Str("addr", *addr).Int("levels", *numLevels).Int("radix", *radix).Log("rollstatd starting")

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Err().Err(err).Log("server exited")
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Err().Err(err).Log("graceful shutdown failed")
	}
}
