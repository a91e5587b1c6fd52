package routers

import (
	"mindcheck-service/internal/app/delivery/http/controllers"
	"mindcheck-service/internal/app/delivery/http/middlewares"
	"mindcheck-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *controllers.NotificationController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRole(constvars.RoleDoctor)).Get("/", notificationController.FindAll)
	router.Post("/", notificationController.CreateNotification)
	router.Get("/user/{user_id}", notificationController.FindByUserID)
	router.Get("/user/{user_id}/unread", notificationController.FindUnreadByUserID)
	router.Get("/{notification_id}", notificationController.FindByID)
	router.Put("/{notification_id}", notificationController.UpdateNotification)
	router.Delete("/{notification_id}", notificationController.DeleteNotification)
}
