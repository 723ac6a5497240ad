package routers

import (
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/app/services/core/triage"

	"github.com/go-chi/chi/v5"
)

func attachTriageRoutes(router chi.Router, middlewares *middlewares.Middlewares, triageController *triage.TriageController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", triageController.ListAssessments)
	router.Post("/", triageController.CreateAssessment)
}
