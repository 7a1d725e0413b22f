package middlewares

import (
	"panchkarma-service/internal/app/config"
	"time"

	"go.uber.org/zap"
)

const rateLimiterBanWindow = time.Minute

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	RateLimiter    *RateLimiter
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		RateLimiter:    NewRateLimiter(internalConfig.App.MaxTimeRequestsPerSeconds, rateLimiterBanWindow),
	}
}
