package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinicdesk/models"
	"clinicdesk/utils"
)

// GetNotifications godoc
// @Summary List notifications, newest first
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Router /notifications [get]
func GetNotifications(c *fiber.Ctx) error {
	notifications := State.Notifications()
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return c.JSON(notifications)
}

// MarkNotificationRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /notifications/{id}/read [patch]
func MarkNotificationRead(c *fiber.Ctx) error {
	if !State.MarkNotificationRead(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Notification not found",
			Error:   "no notification with id " + c.Params("id"),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
