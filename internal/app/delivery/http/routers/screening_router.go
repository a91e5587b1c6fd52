package routers

import (
	"mindcheck-service/internal/app/delivery/http/controllers"
	"mindcheck-service/internal/app/delivery/http/middlewares"
	"mindcheck-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachScreeningRoutes(router chi.Router, middlewares *middlewares.Middlewares, screeningController *controllers.ScreeningController) {
	router.Use(middlewares.Authenticate)

	router.Get("/questions", screeningController.GetQuestionnaire)
	router.With(middlewares.SubmissionRateLimiter).Post("/submit", screeningController.Submit)
	router.Get("/submissions/{user_id}", screeningController.FindSubmissionsByUserID)
	router.Get("/submission/{assessment_id}", screeningController.FindSubmissionByID)
	router.With(middlewares.RequireRole(constvars.RoleDoctor)).Get("/all-results", screeningController.FindAllResults)
}
