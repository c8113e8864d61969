package server

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/dig"
)

// BuildContainer wires the server's object graph — config, logger, gin
// engine — the way the pack's gateway wires its own App via dig.
func BuildContainer() (*dig.Container, error) {
	c := dig.New()

	providers := []any{
		LoadConfig,
		newLogger,
		newEngine,
		NewServer,
	}
	for _, p := range providers {
		if err := c.Provide(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func newLogger(cfg *Config) *logrus.Logger {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func newEngine(cfg *Config, logger *logrus.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestIDMiddleware())
	engine.Use(LogMiddleware(logger))
	if cfg.GzipEnabled {
		engine.Use(GzipMiddleware())
	}
	RegisterRoutes(engine, cfg)
	return engine
}
