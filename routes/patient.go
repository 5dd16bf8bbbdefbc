package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinicdesk/controllers"
)

// SetupPatientRoutes configures all patient related routes
func SetupPatientRoutes(app *fiber.App) {
	patient := app.Group("/patients")
	patient.Get("/", controllers.GetAllPatients)
	patient.Get("/search", controllers.SearchPatients)
	patient.Get("/:id", controllers.GetPatient)
	patient.Post("/", controllers.CreatePatient)
	patient.Put("/:id", controllers.UpdatePatient)
	patient.Delete("/:id", controllers.DeletePatient)
}
