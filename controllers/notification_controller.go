package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SamiMK0/smart-room-management-system/middleware"
	"github.com/SamiMK0/smart-room-management-system/policy"
	"github.com/SamiMK0/smart-room-management-system/services"
	"github.com/SamiMK0/smart-room-management-system/utils"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

func (n *NotificationController) Index(c *gin.Context) {
	notifications, err := n.Notifications.List()
	if err != nil {
		serviceError(c, err, "Notification", "")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

type notificationPayload struct {
	UserID  *uint  `json:"user_id"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (n *NotificationController) Store(c *gin.Context) {
	var payload notificationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields := map[string]string{}
	if payload.UserID == nil {
		fields["user_id"] = "The user id field is required."
	}
	if strings.TrimSpace(payload.Message) == "" {
		fields["message"] = "The message field is required."
	}
	if strings.TrimSpace(payload.Type) == "" {
		fields["type"] = "The type field is required."
	}
	if len(fields) > 0 {
		utils.FieldErrors(c, http.StatusBadRequest, fields)
		return
	}

	notification, err := n.Notifications.Create(services.CreateNotificationInput{
		UserID:  *payload.UserID,
		Message: payload.Message,
		Type:    payload.Type,
	})
	if err != nil {
		serviceError(c, err, "Notification", "")
		return
	}
	c.JSON(http.StatusCreated, notification)
}

func (n *NotificationController) Show(c *gin.Context) {
	notification, err := n.Notifications.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Notification", "")
		return
	}
	if !policy.CanAccessNotification(middleware.Actor(c), &notification) {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (n *NotificationController) Update(c *gin.Context) {
	notification, err := n.Notifications.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Notification", "")
		return
	}

	var payload struct {
		UserID  *uint   `json:"user_id"`
		Message *string `json:"message"`
		Type    string  `json:"type"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := n.Notifications.Update(&notification, services.UpdateNotificationInput{
		UserID:  payload.UserID,
		Message: payload.Message,
		Type:    payload.Type,
	})
	if err != nil {
		serviceError(c, err, "Notification", "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (n *NotificationController) Destroy(c *gin.Context) {
	notification, err := n.Notifications.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Notification", "")
		return
	}
	if !policy.CanAccessNotification(middleware.Actor(c), &notification) {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}
	if err := n.Notifications.Delete(&notification); err != nil {
		serviceError(c, err, "Notification", "")
		return
	}
	utils.Message(c, http.StatusOK, "Notification deleted successfully")
}
