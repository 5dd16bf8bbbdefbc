package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinicdesk/controllers"
)

// SetupDoctorRoutes configures all doctor related routes
func SetupDoctorRoutes(app *fiber.App) {
	doctor := app.Group("/doctors")
	doctor.Get("/", controllers.GetAllDoctors)
	doctor.Get("/search", controllers.SearchDoctors)
	doctor.Get("/:id", controllers.GetDoctor)
	doctor.Post("/", controllers.CreateDoctor)
	doctor.Put("/:id", controllers.UpdateDoctor)
	doctor.Delete("/:id", controllers.DeleteDoctor)
}
