package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"clinicdesk/controllers"
	"clinicdesk/cron"
	"clinicdesk/db"
	"clinicdesk/redis"
	"clinicdesk/routes"
	"clinicdesk/state"
	"clinicdesk/store"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	redis.InitRedis()

	st := store.New(db.DB)
	snapshot := state.New()
	if err := snapshot.Load(st); err != nil {
		// The dashboard keeps running on whatever it has in memory.
		log.Println("Failed to load snapshot: ", err)
	}
	if settings, ok, err := redis.LoadSettings(); err != nil {
		log.Println("Failed to load settings from redis: ", err)
	} else if ok {
		snapshot.SetSettings(settings)
	}
	controllers.Setup(st, snapshot)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ClinicDesk API")
	})
	routes.SetupDoctorRoutes(app)
	routes.SetupPatientRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupDashboardRoutes(app)
	routes.SetupBackupRoutes(app)

	cron.StartCronJobs(snapshot)

	go func() {
		if err := app.Listen(":8000"); err != nil {
			log.Fatal("Server stopped: ", err)
		}
	}()
	log.Println("Server started on port 8000")

	// Flush the snapshot before exiting. Best effort, a hard kill can still
	// interrupt the final save.
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Println("Shutting down, saving state...")
	if err := st.SaveAll(snapshot.Snapshot()); err != nil {
		log.Println("Failed to save state on shutdown: ", err)
	}
	if err := app.Shutdown(); err != nil {
		log.Println("Failed to shut down cleanly: ", err)
	}
}
