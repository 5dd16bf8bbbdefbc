package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinicdesk/controllers"
)

// SetupDashboardRoutes configures the dashboard, notification and settings routes
func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard")
	dashboard.Get("/overview", controllers.GetDashboardOverview)
	dashboard.Get("/today", controllers.GetTodaySchedule)
	dashboard.Get("/charts", controllers.GetDashboardCharts)
	dashboard.Get("/recent", controllers.GetRecentAppointments)

	notification := app.Group("/notifications")
	notification.Get("/", controllers.GetNotifications)
	notification.Patch("/:id/read", controllers.MarkNotificationRead)

	settings := app.Group("/settings")
	settings.Get("/", controllers.GetSettings)
	settings.Put("/", controllers.UpdateSettings)
}
