package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SamiMK0/smart-room-management-system/middleware"
	"github.com/SamiMK0/smart-room-management-system/models"
	"github.com/SamiMK0/smart-room-management-system/services"
	"github.com/SamiMK0/smart-room-management-system/utils"
)

type AuthController struct {
	Users     *services.UserService
	Tokens    *services.TokenService
	UploadDir string
}

func NewAuthController(users *services.UserService, tokens *services.TokenService, uploadDir string) *AuthController {
	return &AuthController{Users: users, Tokens: tokens, UploadDir: uploadDir}
}

type registerPayload struct {
	Name                 string `form:"name" json:"name"`
	Email                string `form:"email" json:"email"`
	Password             string `form:"password" json:"password"`
	PasswordConfirmation string `form:"password_confirmation" json:"password_confirmation"`
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}

// Register creates a user account and issues a bearer token. Accepts JSON or
// multipart form; the form variant may carry an optional profile picture.
func (a *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBind(&payload); err != nil {
		utils.Message(c, http.StatusUnprocessableEntity, "Invalid request payload")
		return
	}

	errs := map[string]string{}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		errs["name"] = "The name field is required."
	}
	if !validEmail(strings.TrimSpace(payload.Email)) {
		errs["email"] = "The email must be a valid email address."
	}
	if len(payload.Password) < 8 {
		errs["password"] = "The password must be at least 8 characters."
	} else if payload.Password != payload.PasswordConfirmation {
		errs["password"] = "The password confirmation does not match."
	}
	if len(errs) > 0 {
		utils.FieldErrors(c, http.StatusUnprocessableEntity, errs)
		return
	}

	var picture *string
	if file, err := c.FormFile("picture"); err == nil {
		if err := utils.ValidatePicture(file); err != nil {
			utils.FieldErrors(c, http.StatusUnprocessableEntity, map[string]string{"picture": err.Error()})
			return
		}
		rel := utils.PicturePath(file)
		dst, err := utils.EnsureUploadDir(a.UploadDir, rel)
		if err == nil {
			err = c.SaveUploadedFile(file, dst)
		}
		if err != nil {
			utils.Message(c, http.StatusInternalServerError, "Failed to store picture")
			return
		}
		picture = &rel
	}

	user, err := a.Users.Create(services.CreateUserInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
		Role:     models.RoleUser,
		Picture:  picture,
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

	token, err := a.Tokens.Issue(&user)
	if err != nil {
		serviceError(c, err, "User", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":         user,
		"access_token": token,
		"token_type":   "Bearer",
	})
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Message(c, http.StatusUnprocessableEntity, "Invalid request payload")
		return
	}

	errs := map[string]string{}
	if strings.TrimSpace(payload.Email) == "" {
		errs["email"] = "The email field is required."
	}
	if payload.Password == "" {
		errs["password"] = "The password field is required."
	}
	if len(errs) > 0 {
		utils.FieldErrors(c, http.StatusUnprocessableEntity, errs)
		return
	}

	user, err := a.Users.Authenticate(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.Message(c, http.StatusUnauthorized, "Invalid login credentials")
			return
		}
		serviceError(c, err, "User", "")
		return
	}

	token, err := a.Tokens.Issue(&user)
	if err != nil {
		serviceError(c, err, "User", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"access_token": token,
		"token_type":   "Bearer",
	})
}

// Logout revokes the token that authenticated this request.
func (a *AuthController) Logout(c *gin.Context) {
	token := middleware.CurrentToken(c)
	if token != nil {
		if err := a.Tokens.Revoke(token.ID); err != nil {
			serviceError(c, err, "Token", "")
			return
		}
	}
	utils.Message(c, http.StatusOK, "Successfully logged out")
}

func (a *AuthController) Me(c *gin.Context) {
	actor := middleware.Actor(c)

	var picture any
	if actor.Picture != nil {
		picture = "/uploads/" + *actor.Picture
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         actor.ID,
		"name":       actor.Name,
		"email":      actor.Email,
		"picture":    picture,
		"phone":      actor.Phone,
		"position":   actor.Position,
		"location":   actor.Location,
		"created_at": actor.CreatedAt,
	})
}
