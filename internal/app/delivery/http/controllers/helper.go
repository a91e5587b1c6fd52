package controllers

import (
	"context"
	"errors"
	"mindcheck-service/internal/app/config"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/exceptions"
	"mindcheck-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

func requestTimeout(internalConfig *config.InternalConfig) time.Duration {
	if internalConfig == nil || internalConfig.App.RequestTimeoutInSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
}

// handleUsecaseError logs err under the caller name and writes the matching
// error response.
func handleUsecaseError(log *zap.Logger, w http.ResponseWriter, caller, requestID string, err error) {
	log.Error(caller+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
