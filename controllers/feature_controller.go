package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SamiMK0/smart-room-management-system/services"
	"github.com/SamiMK0/smart-room-management-system/utils"
)

type FeatureController struct {
	Features *services.FeatureService
}

func NewFeatureController(features *services.FeatureService) *FeatureController {
	return &FeatureController{Features: features}
}

func (f *FeatureController) Index(c *gin.Context) {
	features, err := f.Features.List()
	if err != nil {
		serviceError(c, err, "Feature", "")
		return
	}
	c.JSON(http.StatusOK, features)
}

type featurePayload struct {
	Name string `json:"name"`
}

func (f *FeatureController) Store(c *gin.Context) {
	var payload featurePayload
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Name) == "" {
		utils.FieldErrors(c, http.StatusBadRequest, map[string]string{"name": "The name field is required."})
		return
	}

	feature, err := f.Features.Create(strings.TrimSpace(payload.Name))
	if err != nil {
		serviceError(c, err, "Feature", "")
		return
	}
	c.JSON(http.StatusCreated, feature)
}

func (f *FeatureController) Show(c *gin.Context) {
	feature, err := f.Features.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Feature", "")
		return
	}
	c.JSON(http.StatusOK, feature)
}

func (f *FeatureController) Update(c *gin.Context) {
	feature, err := f.Features.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Feature", "")
		return
	}

	var payload featurePayload
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Name) == "" {
		utils.FieldErrors(c, http.StatusBadRequest, map[string]string{"name": "The name field is required."})
		return
	}

	updated, err := f.Features.Update(&feature, strings.TrimSpace(payload.Name))
	if err != nil {
		serviceError(c, err, "Feature", "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (f *FeatureController) Destroy(c *gin.Context) {
	feature, err := f.Features.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Feature", "")
		return
	}
	if err := f.Features.Delete(&feature); err != nil {
		serviceError(c, err, "Feature", "")
		return
	}
	utils.Message(c, http.StatusOK, "Feature deleted successfully")
}
