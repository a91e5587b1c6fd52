package routers

import (
	"mindcheck-service/internal/app/delivery/http/controllers"
	"mindcheck-service/internal/app/delivery/http/middlewares"
	"mindcheck-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *controllers.AssessmentController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", assessmentController.CreateAssessment)
	router.With(middlewares.RequireRole(constvars.RoleDoctor)).Get("/", assessmentController.FindAll)
	router.Get("/status/{user_id}", assessmentController.GetStatus)
	router.Get("/user/{user_id}", assessmentController.FindByUserID)
	router.Get("/{assessment_id}", assessmentController.FindByID)
	router.Put("/{assessment_id}", assessmentController.UpdateAssessment)
	router.Delete("/{assessment_id}", assessmentController.DeleteAssessment)
}
