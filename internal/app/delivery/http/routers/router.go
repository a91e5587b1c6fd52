package routers

import (
	"fmt"
	"mindcheck-service/internal/app/config"
	"mindcheck-service/internal/app/delivery/http/controllers"
	"mindcheck-service/internal/app/delivery/http/middlewares"
	"mindcheck-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Auth          *controllers.AuthController
	User          *controllers.UserController
	Assessment    *controllers.AssessmentController
	Screening     *controllers.ScreeningController
	PreAssessment *controllers.PreAssessmentController
	Notification  *controllers.NotificationController
	Doctor        *controllers.DoctorController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.AllowedOrigins,
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodPut,
			constvars.MethodDelete,
			constvars.MethodOptions,
		},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, ctrls.Auth)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, ctrls.User, ctrls.Auth)
			})

			r.Route("/assessments", func(r chi.Router) {
				attachAssessmentRoutes(r, middlewares, ctrls.Assessment)
			})

			r.Route("/screenings/{assessment_type}", func(r chi.Router) {
				attachScreeningRoutes(r, middlewares, ctrls.Screening)
			})

			r.Route("/preassessment", func(r chi.Router) {
				attachPreAssessmentRoutes(r, middlewares, ctrls.PreAssessment)
			})

			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, middlewares, ctrls.Notification)
			})

			r.Route("/doctor", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, ctrls.Doctor)
			})
		})
	})
}
