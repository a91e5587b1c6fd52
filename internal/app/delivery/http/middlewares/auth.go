package middlewares

import (
	"context"
	"errors"
	"fmt"
	"math"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/exceptions"
	"mindcheck-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Authenticate resolves the Bearer token into a session and stores it on
// the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		session, err := m.AuthUsecase.Authenticate(ctx, token)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.ContextWithSession(r.Context(), session)))
	})
}

func (m *Middlewares) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := utils.SessionFromContext(r.Context())
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			if session.Role != role {
				utils.LogSecurityEvent(m.Log, "role_mismatch", utils.GetRequestID(r.Context()), "medium",
					zap.String(constvars.LoggingUserIDKey, session.UserID),
					zap.String("required_role", role),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SubmissionRateLimiter limits screening submissions per authenticated user.
// It must run after Authenticate.
func (m *Middlewares) SubmissionRateLimiter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := utils.SessionFromContext(r.Context())
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		allowed, retryAfter := m.SubmissionLimiter.Allow(session.UserID)
		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(seconds))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil, fmt.Sprintf("user %s", session.UserID)))
			return
		}
		next.ServeHTTP(w, r)
	})
}
