package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SamiMK0/smart-room-management-system/services"
	"github.com/SamiMK0/smart-room-management-system/utils"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

func (r *RoomController) Index(c *gin.Context) {
	rooms, err := r.Rooms.List()
	if err != nil {
		serviceError(c, err, "Room", "")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// Available returns the room list for the booking form.
func (r *RoomController) Available(c *gin.Context) {
	rooms, err := r.Rooms.List()
	if err != nil {
		serviceError(c, err, "Room", "")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

type createRoomPayload struct {
	Name     string `json:"name"`
	Capacity *int   `json:"capacity"`
	Location string `json:"location"`
	Features []uint `json:"features"`
}

func (r *RoomController) Store(c *gin.Context) {
	var payload createRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Message(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	errs := map[string]string{}
	if strings.TrimSpace(payload.Name) == "" {
		errs["name"] = "The name field is required."
	}
	if payload.Capacity == nil {
		errs["capacity"] = "The capacity field is required."
	}
	if strings.TrimSpace(payload.Location) == "" {
		errs["location"] = "The location field is required."
	}
	if len(errs) > 0 {
		utils.FieldErrors(c, http.StatusBadRequest, errs)
		return
	}

	room, err := r.Rooms.Create(services.CreateRoomInput{
		Name:     payload.Name,
		Capacity: *payload.Capacity,
		Location: payload.Location,
		Features: payload.Features,
	})
	if err != nil {
		serviceError(c, err, "Room", "")
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (r *RoomController) Show(c *gin.Context) {
	room, err := r.Rooms.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Room", "")
		return
	}
	c.JSON(http.StatusOK, room)
}

type updateRoomPayload struct {
	Name     *string `json:"name"`
	Capacity *int    `json:"capacity"`
	Location *string `json:"location"`
	Features *[]uint `json:"features"`
}

func (r *RoomController) Update(c *gin.Context) {
	room, err := r.Rooms.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Room", "")
		return
	}

	var payload updateRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Message(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := r.Rooms.Update(&room, services.UpdateRoomInput{
		Name:     payload.Name,
		Capacity: payload.Capacity,
		Location: payload.Location,
		Features: payload.Features,
	})
	if err != nil {
		serviceError(c, err, "Room", "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r *RoomController) Destroy(c *gin.Context) {
	room, err := r.Rooms.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Room", "")
		return
	}
	if err := r.Rooms.Delete(&room); err != nil {
		serviceError(c, err, "Room", "")
		return
	}
	utils.Message(c, http.StatusOK, "Room deleted successfully")
}
