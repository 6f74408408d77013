package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/SamiMK0/smart-room-management-system/models"
)

type FeatureService struct {
	DB *gorm.DB
}

func NewFeatureService(db *gorm.DB) *FeatureService {
	return &FeatureService{DB: db}
}

func (s *FeatureService) List() ([]models.FeatureName, error) {
	var features []models.FeatureName
	if err := s.DB.Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

func (s *FeatureService) Get(id uint) (models.FeatureName, error) {
	var feature models.FeatureName
	if err := s.DB.First(&feature, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FeatureName{}, ErrNotFound
		}
		return models.FeatureName{}, err
	}
	return feature, nil
}

func (s *FeatureService) Create(name string) (models.FeatureName, error) {
	var dup int64
	if err := s.DB.Model(&models.FeatureName{}).Where("name = ?", name).Count(&dup).Error; err != nil {
		return models.FeatureName{}, err
	}
	if dup > 0 {
		return models.FeatureName{}, validationErr("name", "has already been taken")
	}

	feature := models.FeatureName{Name: name}
	if err := s.DB.Create(&feature).Error; err != nil {
		return models.FeatureName{}, err
	}
	return feature, nil
}

func (s *FeatureService) Update(feature *models.FeatureName, name string) (models.FeatureName, error) {
	var dup int64
	if err := s.DB.Model(&models.FeatureName{}).
		Where("name = ? AND id <> ?", name, feature.ID).
		Count(&dup).Error; err != nil {
		return models.FeatureName{}, err
	}
	if dup > 0 {
		return models.FeatureName{}, validationErr("name", "has already been taken")
	}

	if err := s.DB.Model(feature).Update("name", name).Error; err != nil {
		return models.FeatureName{}, err
	}
	return s.Get(feature.ID)
}

func (s *FeatureService) Delete(feature *models.FeatureName) error {
	return s.DB.Delete(&models.FeatureName{}, feature.ID).Error
}
