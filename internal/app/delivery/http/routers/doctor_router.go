package routers

import (
	"mindcheck-service/internal/app/delivery/http/controllers"
	"mindcheck-service/internal/app/delivery/http/middlewares"
	"mindcheck-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRole(constvars.RoleDoctor))

	router.Get("/patients", doctorController.FindPatients)
	router.Get("/patients/{patient_id}", doctorController.FindPatientDetail)
	router.Get("/patients/{patient_id}/ai-summary", doctorController.GetPatientSummary)
	router.Get("/patients/{patient_id}/report", doctorController.ExportPatientReport)
}
