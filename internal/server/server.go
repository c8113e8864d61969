package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/elucid503/playerpp/v2/internal/protocol"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Server wraps an http.Server bound to a gin.Engine, with the same
// non-blocking Start / graceful Stop shape the pack's gateway App uses.
type Server struct {
	cfg    *Config
	engine *gin.Engine
	logger *logrus.Logger
	http   *http.Server
}

// NewServer is the dig-injected constructor.
func NewServer(cfg *Config, engine *gin.Engine, logger *logrus.Logger) *Server {
	return &Server{cfg: cfg, engine: engine, logger: logger}
}

// Start runs the HTTP server in a background goroutine; it returns once the
// listener is configured, not once it stops serving.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ListenAddr,
		Handler: s.engine,
	}

	go func() {
		s.logger.Infof("playerpp-serve listening on %s", s.cfg.ListenAddr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatalf("server startup failed: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts the server down, waiting for in-flight requests to
// finish within ctx's deadline before forcing a close.
func (s *Server) Stop(ctx context.Context) {
	if s.http == nil {
		return
	}
	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Warnf("graceful shutdown timed out, forcing close: %v", err)
		_ = s.http.Close()
	}
}

// RegisterRoutes wires POST /v1/solve, the HTTP carrier for spec.md §6.2's
// request/response envelope.
func RegisterRoutes(engine *gin.Engine, cfg *Config) {
	engine.POST("/v1/solve", solveHandler(cfg))
}

func solveHandler(cfg *Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, protocol.NewErrorOutput(fmt.Sprintf("reading request body: %v", err)))
			return
		}

		input, err := protocol.DecodeInput(body)
		if err != nil {
			c.JSON(http.StatusBadRequest, protocol.NewErrorOutput(err.Error()))
			return
		}

		runtimeName := c.Query("runtime")
		if runtimeName == "" {
			runtimeName = cfg.DefaultRuntime
		}

		out := protocol.Process(input, runtimeName)
		c.JSON(http.StatusOK, out)
	}
}
