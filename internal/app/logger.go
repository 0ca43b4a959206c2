// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/logger"
)

// InitializeLogger configures the global JSON logger.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
