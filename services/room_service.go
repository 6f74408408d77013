package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/SamiMK0/smart-room-management-system/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type CreateRoomInput struct {
	Name     string
	Capacity int
	Location string
	Features []uint
}

// Create rejects a duplicate (name, location) pair. The pair is checked,
// not constrained at the schema level.
func (s *RoomService) Create(in CreateRoomInput) (models.Room, error) {
	var room models.Room
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var dup int64
		if err := tx.Model(&models.Room{}).
			Where("name = ? AND location = ?", in.Name, in.Location).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return validationErr("name", "a room with the same name and location already exists")
		}

		room = models.Room{Name: in.Name, Capacity: in.Capacity, Location: in.Location}
		if err := tx.Create(&room).Error; err != nil {
			return err
		}
		if len(in.Features) > 0 {
			features, err := s.featuresByID(tx, in.Features)
			if err != nil {
				return err
			}
			return tx.Model(&room).Association("Features").Replace(features)
		}
		return nil
	})
	if err != nil {
		return models.Room{}, err
	}
	return s.Get(room.ID)
}

func (s *RoomService) Get(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("Features").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrNotFound
		}
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) List() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Preload("Features").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

type UpdateRoomInput struct {
	Name     *string
	Capacity *int
	Location *string
	Features *[]uint
}

func (s *RoomService) Update(room *models.Room, in UpdateRoomInput) (models.Room, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{}
		if in.Name != nil {
			updates["name"] = *in.Name
		}
		if in.Capacity != nil {
			updates["capacity"] = *in.Capacity
		}
		if in.Location != nil {
			updates["location"] = *in.Location
		}
		if len(updates) > 0 {
			if err := tx.Model(room).Updates(updates).Error; err != nil {
				return err
			}
		}
		if in.Features != nil {
			features, err := s.featuresByID(tx, *in.Features)
			if err != nil {
				return err
			}
			return tx.Model(room).Association("Features").Replace(features)
		}
		return nil
	})
	if err != nil {
		return models.Room{}, err
	}
	return s.Get(room.ID)
}

func (s *RoomService) Delete(room *models.Room) error {
	return s.DB.Select("Features").Delete(&models.Room{ID: room.ID}).Error
}

// Features lists the feature tags attached to a room.
func (s *RoomService) Features(roomID uint) ([]models.FeatureName, error) {
	room, err := s.Get(roomID)
	if err != nil {
		return nil, err
	}
	return room.Features, nil
}

// AttachFeature links a feature to a room; duplicates are a conflict.
func (s *RoomService) AttachFeature(roomID, featureID uint) (models.FeatureName, error) {
	var feature models.FeatureName
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validationErr("room_id", "room does not exist")
			}
			return err
		}
		if err := tx.First(&feature, featureID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validationErr("feature_name_id", "feature does not exist")
			}
			return err
		}

		var existing int64
		if err := tx.Table("room_features").
			Where("room_id = ? AND feature_name_id = ?", roomID, featureID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrConflict
		}
		return tx.Model(&room).Association("Features").Append(&feature)
	})
	if err != nil {
		return models.FeatureName{}, err
	}
	return feature, nil
}

// DetachFeature removes a feature from a room; missing links are not found.
func (s *RoomService) DetachFeature(roomID, featureID uint) error {
	var existing int64
	if err := s.DB.Table("room_features").
		Where("room_id = ? AND feature_name_id = ?", roomID, featureID).
		Count(&existing).Error; err != nil {
		return err
	}
	if existing == 0 {
		return ErrNotFound
	}
	return s.DB.Model(&models.Room{ID: roomID}).
		Association("Features").
		Delete(&models.FeatureName{ID: featureID})
}

func (s *RoomService) featuresByID(tx *gorm.DB, ids []uint) ([]models.FeatureName, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var features []models.FeatureName
	if err := tx.Where("id IN ?", ids).Find(&features).Error; err != nil {
		return nil, err
	}
	if len(features) != len(uniqueIDs(ids)) {
		return nil, validationErr("features", "one or more features do not exist")
	}
	return features, nil
}
