package middlewares

import (
	"mindcheck-service/internal/app/config"
	"mindcheck-service/internal/app/contracts"
	"mindcheck-service/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log               *zap.Logger
	AuthUsecase       contracts.AuthUsecase
	InternalConfig    *config.InternalConfig
	SubmissionLimiter *ratelimiter.KeyedLimiter
}

func NewMiddlewares(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
		SubmissionLimiter: ratelimiter.NewKeyedLimiter(
			internalConfig.Screening.SubmissionsPerMinute,
			internalConfig.Screening.SubmissionBurst,
		),
	}
}
