package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SamiMK0/smart-room-management-system/models"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Picture  *string
}

func (s *UserService) Create(in CreateUserInput) (models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var existing int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return models.User{}, err
	}
	if existing > 0 {
		return models.User{}, validationErr("email", "has already been taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	user := models.User{
		Name:     in.Name,
		Email:    email,
		Password: string(hash),
		Role:     role,
		Picture:  in.Picture,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate checks the email/password pair and returns the user.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(id uint) (models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Search matches users by name or email substring.
func (s *UserService) Search(name, email string) ([]models.User, error) {
	q := s.DB.Model(&models.User{})
	if email != "" {
		q = q.Where("email LIKE ?", "%"+email+"%")
	}
	if name != "" {
		q = q.Where("name LIKE ?", "%"+name+"%")
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Position *string
	Location *string
	// Picture semantics: nil leaves the stored path alone, a pointer to ""
	// clears it, anything else replaces it.
	Picture *string
}

func (s *UserService) Update(user *models.User, in UpdateUserInput) (models.User, error) {
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		var taken int64
		if err := s.DB.Model(&models.User{}).
			Where("email = ? AND id <> ?", email, user.ID).
			Count(&taken).Error; err != nil {
			return models.User{}, err
		}
		if taken > 0 {
			return models.User{}, validationErr("email", "has already been taken")
		}
		updates["email"] = email
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Position != nil {
		updates["position"] = *in.Position
	}
	if in.Location != nil {
		updates["location"] = *in.Location
	}
	if in.Picture != nil {
		if *in.Picture == "" {
			updates["picture"] = nil
		} else {
			updates["picture"] = *in.Picture
		}
	}

	if len(updates) > 0 {
		if err := s.DB.Model(user).Updates(updates).Error; err != nil {
			return models.User{}, err
		}
	}
	return s.Get(user.ID)
}

func (s *UserService) Delete(user *models.User) error {
	return s.DB.Delete(&models.User{}, user.ID).Error
}
