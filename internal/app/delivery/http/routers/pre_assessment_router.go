package routers

import (
	"mindcheck-service/internal/app/delivery/http/controllers"
	"mindcheck-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPreAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, preAssessmentController *controllers.PreAssessmentController) {
	router.Use(middlewares.Authenticate)

	router.Get("/questions", preAssessmentController.GetQuestions)
	router.Post("/submit", preAssessmentController.Submit)
	router.Get("/submissions/{user_id}", preAssessmentController.FindSubmissionsByUserID)
	router.Get("/submission/{assessment_id}", preAssessmentController.FindSubmissionByID)
}
