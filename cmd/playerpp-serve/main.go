// Command playerpp-serve exposes spec.md §6.2's request/response envelope
// as a long-running HTTP server, for callers that want to avoid spawning a
// process per player.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elucid503/playerpp/v2/internal/server"
	"github.com/sirupsen/logrus"
)

func main() {
	container, err := server.BuildContainer()
	if err != nil {
		logrus.Fatalf("failed to build container: %v", err)
	}

	if err := container.Invoke(func(srv *server.Server) error {
		return srv.Start()
	}); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logrus.Infof("received signal: %v, shutting down", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := container.Invoke(func(srv *server.Server) {
		srv.Stop(shutdownCtx)
	}); err != nil {
		logrus.Fatalf("failed to stop server: %v", err)
	}
}
