package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SamiMK0/smart-room-management-system/services"
	"github.com/SamiMK0/smart-room-management-system/utils"
)

type RoomFeatureController struct {
	Rooms *services.RoomService
}

func NewRoomFeatureController(rooms *services.RoomService) *RoomFeatureController {
	return &RoomFeatureController{Rooms: rooms}
}

func (r *RoomFeatureController) Index(c *gin.Context) {
	features, err := r.Rooms.Features(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Room", "")
		return
	}
	c.JSON(http.StatusOK, features)
}

type attachFeaturePayload struct {
	FeatureNameID uint `json:"feature_name_id"`
}

func (r *RoomFeatureController) Store(c *gin.Context) {
	var payload attachFeaturePayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.FeatureNameID == 0 {
		utils.FieldErrors(c, http.StatusBadRequest, map[string]string{"feature_name_id": "The feature_name_id field is required."})
		return
	}

	roomID := idParam(c, "id")
	feature, err := r.Rooms.AttachFeature(roomID, payload.FeatureNameID)
	if err != nil {
		serviceError(c, err, "Room", "This feature is already assigned to the room")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Feature successfully added to room",
		"data": gin.H{
			"room_id":         roomID,
			"feature_name_id": feature.ID,
			"feature_name":    feature.Name,
		},
	})
}

func (r *RoomFeatureController) Destroy(c *gin.Context) {
	err := r.Rooms.DetachFeature(idParam(c, "id"), idParam(c, "featureId"))
	if err != nil {
		serviceError(c, err, "Feature for this room", "")
		return
	}
	utils.Message(c, http.StatusOK, "Feature successfully removed from room")
}
