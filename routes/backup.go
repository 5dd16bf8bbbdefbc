package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinicdesk/controllers"
)

// SetupBackupRoutes configures the bulk save, export and import routes
func SetupBackupRoutes(app *fiber.App) {
	app.Post("/state/save", controllers.SaveState)

	backup := app.Group("/backup")
	backup.Get("/export", controllers.ExportBackup)
	backup.Get("/mirror", controllers.GetBackupMirror)
	backup.Post("/import", controllers.ImportBackup)
}
