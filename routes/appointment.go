package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinicdesk/controllers"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments")
	appointment.Get("/", controllers.GetAllAppointments)
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Post("/", controllers.CreateAppointment)
	appointment.Put("/:id", controllers.UpdateAppointment)
	appointment.Delete("/:id", controllers.DeleteAppointment)
}
