package routers

import (
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/app/services/core/prescriptions"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *prescriptions.PrescriptionController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", prescriptionController.ListPrescriptions)
	router.Post("/", prescriptionController.CreatePrescription)
	router.Post("/{prescriptionID}/dispense", prescriptionController.DispensePrescription)
}
