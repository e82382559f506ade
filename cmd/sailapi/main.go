// Command sailapi serves the propulsion tradeoff calculator over HTTP.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	kitlog "github.com/go-kit/kit/log"

	"github.com/dcgrigsby/probe"
	"github.com/dcgrigsby/probe/api"
)

var addr string

func init() {
	flag.StringVar(&addr, "addr", ":8080", "listen address")
}

func main() {
	flag.Parse()
	logger := kitlog.With(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout)), "cmd", "sailapi")

	env, err := probe.LoadEnvironment()
	if err != nil {
		logger.Log("level", "error", "err", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server := &http.Server{
		Addr:         addr,
		Handler:      api.NewServer(env, logger).Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		logger.Log("level", "info", "msg", "listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log("level", "error", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log("level", "error", "err", err)
		os.Exit(1)
	}
	logger.Log("level", "info", "msg", "stopped")
}
