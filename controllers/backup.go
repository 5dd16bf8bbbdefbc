package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"clinicdesk/models"
	"clinicdesk/redis"
	"clinicdesk/utils"
)

// SaveState godoc
// @Summary Persist the full in-memory snapshot
// @Description Upserts every record in the snapshot (independent writes, not
// @Description one transaction) and mirrors the bundle to Redis
// @Tags backup
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} utils.ErrorResponse
// @Router /state/save [post]
func SaveState(c *fiber.Ctx) error {
	snapshot := State.Snapshot()
	if err := Store.SaveAll(snapshot); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save state",
			Error:   err.Error(),
		})
	}
	if err := redis.MirrorBackup(snapshot); err != nil {
		// Mirror failures are not fatal, the primary write succeeded.
		log.Println("Failed to mirror backup to redis: ", err)
	}
	return c.JSON(fiber.Map{
		"doctors":      len(snapshot.Doctors),
		"patients":     len(snapshot.Patients),
		"appointments": len(snapshot.Appointments),
	})
}

// GetBackupMirror godoc
// @Summary Fetch the last bundle mirrored to Redis
// @Tags backup
// @Produce json
// @Success 200 {object} models.Backup
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /backup/mirror [get]
func GetBackupMirror(c *fiber.Ctx) error {
	backup, err := redis.LoadBackupMirror()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to read backup mirror",
			Error:   err.Error(),
		})
	}
	if backup == nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "No backup mirror available",
			Error:   "nothing has been mirrored yet",
		})
	}
	return c.JSON(backup)
}

// ExportBackup godoc
// @Summary Download the full database as a JSON bundle
// @Tags backup
// @Produce json
// @Success 200 {object} models.Backup
// @Failure 500 {object} utils.ErrorResponse
// @Router /backup/export [get]
func ExportBackup(c *fiber.Ctx) error {
	backup, err := Store.Export()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to export backup",
			Error:   err.Error(),
		})
	}
	filename := fmt.Sprintf("clinic-backup-%s.json", time.Now().Format("2006-01-02-150405"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.JSON(backup)
}

// ImportBackup godoc
// @Summary Restore the database from a JSON bundle
// @Description Clears all three collections, repopulates them from the
// @Description bundle and reloads the in-memory snapshot. Bundles with an
// @Description unknown version are rejected.
// @Tags backup
// @Accept json
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /backup/import [post]
func ImportBackup(c *fiber.Ctx) error {
	var backup models.Backup
	if err := c.BodyParser(&backup); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse backup bundle",
			Error:   err.Error(),
		})
	}
	if backup.Version != models.BackupVersion {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unsupported backup version",
			Error:   fmt.Sprintf("got version %d, want %d", backup.Version, models.BackupVersion),
		})
	}
	if err := Store.Import(&backup); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to import backup",
			Error:   err.Error(),
		})
	}
	if err := State.Load(Store); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Imported but failed to reload snapshot",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"doctors":      len(backup.Doctors),
		"patients":     len(backup.Patients),
		"appointments": len(backup.Appointments),
	})
}
