package routers

import (
	"patient-registry-service/internal/app/delivery/http/controllers"
	"patient-registry-service/internal/app/delivery/http/middlewares"
	"patient-registry-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	// writes get the stricter per-IP limiter with temporary blocking
	writeLimiter := middlewares.NewWriteRateLimiter()

	router.With(writeLimiter.Limit).Post("/", patientController.CreatePatient)
	router.Get("/{"+constvars.URLParamPatientID+"}", patientController.FindPatientByID)
	router.Get("/", patientController.SearchPatients)
}
