package routers

import (
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", patientController.ListPatients)
	router.Post("/", patientController.RegisterPatient)
	router.Get("/{patientID}", patientController.GetPatientByID)
	router.Put("/{patientID}", patientController.UpdatePatient)
	router.Post("/{patientID}/card/activate", patientController.ActivateCard)
	router.Delete("/{patientID}/card/suspension", patientController.LiftSuspension)
}
