package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SamiMK0/smart-room-management-system/middleware"
	"github.com/SamiMK0/smart-room-management-system/models"
	"github.com/SamiMK0/smart-room-management-system/policy"
	"github.com/SamiMK0/smart-room-management-system/services"
	"github.com/SamiMK0/smart-room-management-system/utils"
)

// defaultUserPassword is assigned when an admin creates a user without one.
const defaultUserPassword = "temporaryPassword123!"

type UserController struct {
	Users         *services.UserService
	Meetings      *services.MeetingService
	Notifications *services.NotificationService
	UploadDir     string
}

func NewUserController(
	users *services.UserService,
	meetings *services.MeetingService,
	notifications *services.NotificationService,
	uploadDir string,
) *UserController {
	return &UserController{Users: users, Meetings: meetings, Notifications: notifications, UploadDir: uploadDir}
}

func (u *UserController) Index(c *gin.Context) {
	users, err := u.Users.List()
	if err != nil {
		serviceError(c, err, "User", "")
		return
	}
	c.JSON(http.StatusOK, users)
}

type storeUserPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Store creates a user on behalf of an admin.
func (u *UserController) Store(c *gin.Context) {
	var payload storeUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Message(c, http.StatusUnprocessableEntity, "Invalid request payload")
		return
	}

	errs := map[string]string{}
	if strings.TrimSpace(payload.Name) == "" {
		errs["name"] = "The name field is required."
	}
	if !validEmail(strings.TrimSpace(payload.Email)) {
		errs["email"] = "The email must be a valid email address."
	}
	if payload.Password != "" && len(payload.Password) < 8 {
		errs["password"] = "The password must be at least 8 characters."
	}
	if len(errs) > 0 {
		utils.FieldErrors(c, http.StatusUnprocessableEntity, errs)
		return
	}

	password := payload.Password
	if password == "" {
		password = defaultUserPassword
	}

	user, err := u.Users.Create(services.CreateUserInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: password,
		Role:     models.RoleUser,
	})
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			utils.FieldErrors(c, http.StatusUnprocessableEntity, map[string]string{vErr.Field: vErr.Message})
			return
		}
		serviceError(c, err, "User", "")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (u *UserController) Show(c *gin.Context) {
	user, err := u.Users.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "User", "")
		return
	}
	if !policy.CanAccessUser(middleware.Actor(c), user.ID) {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateUserPayload struct {
	Name     *string `form:"name" json:"name"`
	Email    *string `form:"email" json:"email"`
	Phone    *string `form:"phone" json:"phone"`
	Position *string `form:"position" json:"position"`
	Location *string `form:"location" json:"location"`
	Picture  *string `form:"picture" json:"picture"`
}

func (u *UserController) Update(c *gin.Context) {
	user, err := u.Users.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "User", "")
		return
	}
	if !policy.CanAccessUser(middleware.Actor(c), user.ID) {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}

	var payload updateUserPayload
	if err := c.ShouldBind(&payload); err != nil {
		utils.Message(c, http.StatusUnprocessableEntity, "Invalid request payload")
		return
	}

	in := services.UpdateUserInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Position: payload.Position,
		Location: payload.Location,
	}

	if file, ferr := c.FormFile("picture"); ferr == nil {
		rel, serr := u.storePicture(c, file, &user)
		if serr != nil {
			utils.FieldErrors(c, http.StatusUnprocessableEntity, map[string]string{"picture": serr.Error()})
			return
		}
		in.Picture = &rel
	} else if payload.Picture != nil && *payload.Picture == "" {
		// Empty string means "remove the picture".
		if user.Picture != nil {
			utils.RemoveUpload(u.UploadDir, *user.Picture)
		}
		empty := ""
		in.Picture = &empty
	}

	updated, err := u.Users.Update(&user, in)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			utils.FieldErrors(c, http.StatusUnprocessableEntity, map[string]string{vErr.Field: vErr.Message})
			return
		}
		serviceError(c, err, "User", "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

type updateProfilePayload struct {
	updateUserPayload
	RemovePicture bool `form:"remove_picture" json:"remove_picture"`
}

// UpdateProfile lets a user edit their own profile, picture included.
func (u *UserController) UpdateProfile(c *gin.Context) {
	actor := middleware.Actor(c)
	if actor.ID != idParam(c, "id") {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}

	user, err := u.Users.Get(actor.ID)
	if err != nil {
		serviceError(c, err, "User", "")
		return
	}

	var payload updateProfilePayload
	if err := c.ShouldBind(&payload); err != nil {
		utils.Message(c, http.StatusUnprocessableEntity, "Invalid request payload")
		return
	}

	in := services.UpdateUserInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Position: payload.Position,
		Location: payload.Location,
	}

	if file, ferr := c.FormFile("picture"); ferr == nil {
		rel, serr := u.storePicture(c, file, &user)
		if serr != nil {
			utils.FieldErrors(c, http.StatusUnprocessableEntity, map[string]string{"picture": serr.Error()})
			return
		}
		in.Picture = &rel
	} else if payload.RemovePicture {
		if user.Picture != nil {
			utils.RemoveUpload(u.UploadDir, *user.Picture)
		}
		empty := ""
		in.Picture = &empty
	}

	updated, err := u.Users.Update(&user, in)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			utils.FieldErrors(c, http.StatusUnprocessableEntity, map[string]string{vErr.Field: vErr.Message})
			return
		}
		serviceError(c, err, "User", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    updated,
	})
}

func (u *UserController) Destroy(c *gin.Context) {
	user, err := u.Users.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "User", "")
		return
	}
	if !policy.CanAccessUser(middleware.Actor(c), user.ID) {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}
	if err := u.Users.Delete(&user); err != nil {
		serviceError(c, err, "User", "")
		return
	}
	utils.Message(c, http.StatusOK, "User deleted successfully")
}

func (u *UserController) Search(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	email := strings.TrimSpace(c.Query("email"))
	if name == "" && email == "" {
		utils.FieldErrors(c, http.StatusBadRequest, map[string]string{
			"email": "The email field is required when name is not present.",
		})
		return
	}

	users, err := u.Users.Search(name, email)
	if err != nil {
		serviceError(c, err, "User", "")
		return
	}
	c.JSON(http.StatusOK, users)
}

// NotificationsForUser lists a user's notifications.
func (u *UserController) NotificationsForUser(c *gin.Context) {
	user, err := u.Users.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "User", "")
		return
	}
	if !policy.CanAccessUser(middleware.Actor(c), user.ID) {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}

	notifications, err := u.Notifications.ListForUser(user.ID)
	if err != nil {
		serviceError(c, err, "User", "")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MeetingsForUser lists the meetings a user organizes or attends.
func (u *UserController) MeetingsForUser(c *gin.Context) {
	user, err := u.Users.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "User", "")
		return
	}
	if !policy.CanAccessUser(middleware.Actor(c), user.ID) {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}

	meetings, err := u.Meetings.ListForUser(user.ID)
	if err != nil {
		serviceError(c, err, "User", "")
		return
	}
	c.JSON(http.StatusOK, meetings)
}

// storePicture validates and stores an upload, replacing the user's previous
// picture on disk.
func (u *UserController) storePicture(c *gin.Context, file *multipart.FileHeader, user *models.User) (string, error) {
	if err := utils.ValidatePicture(file); err != nil {
		return "", err
	}
	rel := utils.PicturePath(file)
	dst, err := utils.EnsureUploadDir(u.UploadDir, rel)
	if err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	if user.Picture != nil {
		utils.RemoveUpload(u.UploadDir, *user.Picture)
	}
	return rel, nil
}
