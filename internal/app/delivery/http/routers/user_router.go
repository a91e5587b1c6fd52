package routers

import (
	"mindcheck-service/internal/app/delivery/http/controllers"
	"mindcheck-service/internal/app/delivery/http/middlewares"
	"mindcheck-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController, authController *controllers.AuthController) {
	router.Post("/", userController.CreateUser)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Get("/me", authController.Me)
		r.With(middlewares.RequireRole(constvars.RoleDoctor)).Get("/", userController.FindAll)
		r.Get("/{user_id}", userController.FindByID)
		r.Put("/{user_id}", userController.UpdateUser)
		r.Delete("/{user_id}", userController.DeleteUser)
	})
}
