package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SamiMK0/smart-room-management-system/middleware"
	"github.com/SamiMK0/smart-room-management-system/policy"
	"github.com/SamiMK0/smart-room-management-system/services"
	"github.com/SamiMK0/smart-room-management-system/utils"
)

type MoMItemController struct {
	MoMs *services.MoMService
}

func NewMoMItemController(moms *services.MoMService) *MoMItemController {
	return &MoMItemController{MoMs: moms}
}

func (m *MoMItemController) Index(c *gin.Context) {
	items, err := m.MoMs.ListItems(middleware.Actor(c))
	if err != nil {
		serviceError(c, err, "MoM item", "")
		return
	}
	c.JSON(http.StatusOK, items)
}

// UserItems lists the action items assigned to the actor.
func (m *MoMItemController) UserItems(c *gin.Context) {
	items, err := m.MoMs.ListItemsAssignedTo(middleware.Actor(c).ID)
	if err != nil {
		serviceError(c, err, "MoM item", "")
		return
	}
	c.JSON(http.StatusOK, items)
}

type createMoMItemPayload struct {
	MoMID uint `json:"mom_id"`
	momItemPayload
}

func (m *MoMItemController) Store(c *gin.Context) {
	var payload createMoMItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Message(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.MoMID == 0 {
		utils.FieldErrors(c, http.StatusBadRequest, map[string]string{"mom_id": "The mom_id field is required."})
		return
	}

	mom, err := m.MoMs.Get(payload.MoMID)
	if err != nil {
		serviceError(c, err, "MoM", "")
		return
	}

	actor := middleware.Actor(c)
	if !policy.CanEditMoM(actor, &mom) {
		utils.Message(c, http.StatusForbidden, "Only MoM creator can add items")
		return
	}

	item, err := m.MoMs.CreateItem(services.CreateMoMItemInput{
		MoMID:   mom.ID,
		ActorID: actor.ID,
		Item: services.MoMItemInput{
			ItemType:      payload.ItemType,
			Content:       payload.Content,
			SequenceOrder: payload.SequenceOrder,
			AssignedTo:    payload.AssignedTo,
			DueDate:       toDate(payload.DueDate),
		},
	})
	if err != nil {
		serviceError(c, err, "MoM item", "")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (m *MoMItemController) Show(c *gin.Context) {
	item, err := m.MoMs.GetItem(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "MoM item", "")
		return
	}
	if !policy.CanViewMoMItem(middleware.Actor(c), &item) {
		utils.Message(c, http.StatusForbidden, "Unauthorized to view this item")
		return
	}
	c.JSON(http.StatusOK, item)
}

type updateMoMItemPayload struct {
	ItemType      *string    `json:"item_type"`
	Content       *string    `json:"content"`
	SequenceOrder *int       `json:"sequence_order"`
	AssignedTo    *uint      `json:"assigned_to"`
	DueDate       *time.Time `json:"due_date"`
}

func (m *MoMItemController) Update(c *gin.Context) {
	item, err := m.MoMs.GetItem(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "MoM item", "")
		return
	}
	if !policy.CanEditMoMItem(middleware.Actor(c), &item) {
		utils.Message(c, http.StatusForbidden, "Only MoM creator can update items")
		return
	}

	var payload updateMoMItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Message(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := m.MoMs.UpdateItem(&item, services.UpdateMoMItemInput{
		ItemType:      payload.ItemType,
		Content:       payload.Content,
		SequenceOrder: payload.SequenceOrder,
		AssignedTo:    payload.AssignedTo,
		DueDate:       toDate(payload.DueDate),
	})
	if err != nil {
		serviceError(c, err, "MoM item", "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (m *MoMItemController) Destroy(c *gin.Context) {
	item, err := m.MoMs.GetItem(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "MoM item", "")
		return
	}
	if !policy.CanEditMoMItem(middleware.Actor(c), &item) {
		utils.Message(c, http.StatusForbidden, "Only MoM creator can delete items")
		return
	}
	if err := m.MoMs.DeleteItem(&item); err != nil {
		serviceError(c, err, "MoM item", "")
		return
	}
	utils.Message(c, http.StatusOK, "MoM item deleted successfully")
}
