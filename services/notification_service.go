package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/SamiMK0/smart-room-management-system/models"
)

type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

type CreateNotificationInput struct {
	UserID  uint
	Message string
	Type    string
}

func validNotificationType(t string) bool {
	switch t {
	case models.NotificationInvitation,
		models.NotificationBookingConfirmation,
		models.NotificationActionItemAssigned:
		return true
	}
	return false
}

func (s *NotificationService) Create(in CreateNotificationInput) (models.Notification, error) {
	if !validNotificationType(in.Type) {
		return models.Notification{}, validationErr("type", "must be invitation, booking_confirmation or action_item_assigned")
	}
	if err := validateUserIDs(s.DB, []uint{in.UserID}); err != nil {
		return models.Notification{}, validationErr("user_id", "user does not exist")
	}

	n := models.Notification{UserID: in.UserID, Message: in.Message, Type: in.Type}
	if err := s.DB.Create(&n).Error; err != nil {
		return models.Notification{}, err
	}
	return s.Get(n.ID)
}

func (s *NotificationService) Get(id uint) (models.Notification, error) {
	var n models.Notification
	if err := s.DB.Preload("User").First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Notification{}, ErrNotFound
		}
		return models.Notification{}, err
	}
	return n, nil
}

func (s *NotificationService) List() ([]models.Notification, error) {
	var ns []models.Notification
	if err := s.DB.Preload("User").Find(&ns).Error; err != nil {
		return nil, err
	}
	return ns, nil
}

func (s *NotificationService) ListForUser(userID uint) ([]models.Notification, error) {
	var ns []models.Notification
	if err := s.DB.Where("user_id = ?", userID).Find(&ns).Error; err != nil {
		return nil, err
	}
	return ns, nil
}

type UpdateNotificationInput struct {
	UserID  *uint
	Message *string
	Type    string // required on every update
}

func (s *NotificationService) Update(n *models.Notification, in UpdateNotificationInput) (models.Notification, error) {
	if !validNotificationType(in.Type) {
		return models.Notification{}, validationErr("type", "must be invitation, booking_confirmation or action_item_assigned")
	}

	updates := map[string]any{"type": in.Type}
	if in.UserID != nil {
		if err := validateUserIDs(s.DB, []uint{*in.UserID}); err != nil {
			return models.Notification{}, validationErr("user_id", "user does not exist")
		}
		updates["user_id"] = *in.UserID
	}
	if in.Message != nil {
		updates["message"] = *in.Message
	}
	if err := s.DB.Model(n).Updates(updates).Error; err != nil {
		return models.Notification{}, err
	}
	return s.Get(n.ID)
}

func (s *NotificationService) Delete(n *models.Notification) error {
	return s.DB.Delete(&models.Notification{}, n.ID).Error
}
