package routers

import (
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/app/services/core/labtests"

	"github.com/go-chi/chi/v5"
)

func attachLabTestRoutes(router chi.Router, middlewares *middlewares.Middlewares, labTestController *labtests.LabTestController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", labTestController.ListLabTests)
	router.Post("/", labTestController.RequestLabTest)
	router.Post("/{labTestID}/start", labTestController.StartLabTest)
	router.Post("/{labTestID}/complete", labTestController.CompleteLabTest)
}
