package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/SamiMK0/smart-room-management-system/middleware"
	"github.com/SamiMK0/smart-room-management-system/policy"
	"github.com/SamiMK0/smart-room-management-system/services"
	"github.com/SamiMK0/smart-room-management-system/utils"
)

type MoMController struct {
	MoMs     *services.MoMService
	Meetings *services.MeetingService
}

func NewMoMController(moms *services.MoMService, meetings *services.MeetingService) *MoMController {
	return &MoMController{MoMs: moms, Meetings: meetings}
}

type momItemPayload struct {
	ItemType      string     `json:"item_type"`
	Content       string     `json:"content"`
	SequenceOrder int        `json:"sequence_order"`
	AssignedTo    *uint      `json:"assigned_to"`
	DueDate       *time.Time `json:"due_date"`
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(*t)
	return &d
}

func toItemInputs(items []momItemPayload) []services.MoMItemInput {
	inputs := make([]services.MoMItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, services.MoMItemInput{
			ItemType:      item.ItemType,
			Content:       item.Content,
			SequenceOrder: item.SequenceOrder,
			AssignedTo:    item.AssignedTo,
			DueDate:       toDate(item.DueDate),
		})
	}
	return inputs
}

func (m *MoMController) Index(c *gin.Context) {
	moms, err := m.MoMs.List(middleware.Actor(c))
	if err != nil {
		serviceError(c, err, "MoM", "")
		return
	}
	c.JSON(http.StatusOK, moms)
}

// UserMoMs lists the MoMs the actor created.
func (m *MoMController) UserMoMs(c *gin.Context) {
	moms, err := m.MoMs.ListCreatedBy(middleware.Actor(c).ID)
	if err != nil {
		serviceError(c, err, "MoM", "")
		return
	}
	c.JSON(http.StatusOK, moms)
}

type createMoMPayload struct {
	MeetingID uint             `json:"meeting_id"`
	CreatedBy uint             `json:"created_by"`
	Items     []momItemPayload `json:"items"`
}

func (m *MoMController) Store(c *gin.Context) {
	var payload createMoMPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Message(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	errs := map[string]string{}
	if payload.MeetingID == 0 {
		errs["meeting_id"] = "The meeting_id field is required."
	}
	if payload.CreatedBy == 0 {
		errs["created_by"] = "The created_by field is required."
	}
	if len(payload.Items) == 0 {
		errs["items"] = "The items field is required."
	}
	if len(errs) > 0 {
		utils.FieldErrors(c, http.StatusBadRequest, errs)
		return
	}

	meeting, err := m.Meetings.Get(payload.MeetingID)
	if err != nil {
		serviceError(c, err, "Meeting", "")
		return
	}

	actor := middleware.Actor(c)
	if !policy.CanViewMeeting(actor, &meeting) {
		utils.Message(c, http.StatusForbidden, "Unauthorized to create MoM for this meeting")
		return
	}

	mom, err := m.MoMs.Create(services.CreateMoMInput{
		MeetingID: payload.MeetingID,
		CreatedBy: payload.CreatedBy,
		ActorID:   actor.ID,
		Items:     toItemInputs(payload.Items),
	})
	if err != nil {
		serviceError(c, err, "MoM", "")
		return
	}
	c.JSON(http.StatusCreated, mom)
}

func (m *MoMController) Show(c *gin.Context) {
	mom, err := m.MoMs.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "MoM", "")
		return
	}
	if !policy.CanViewMoM(middleware.Actor(c), &mom) {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, mom)
}

// ByMeeting finds the MoM attached to a meeting.
func (m *MoMController) ByMeeting(c *gin.Context) {
	mom, err := m.MoMs.GetByMeeting(idParam(c, "meetingId"))
	if err != nil {
		serviceError(c, err, "MoM", "")
		return
	}
	if !policy.CanViewMoM(middleware.Actor(c), &mom) {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, mom)
}

type updateMoMPayload struct {
	MeetingID *uint             `json:"meeting_id"`
	CreatedBy *uint             `json:"created_by"`
	Items     *[]momItemPayload `json:"items"`
}

func (m *MoMController) Update(c *gin.Context) {
	mom, err := m.MoMs.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "MoM", "")
		return
	}

	actor := middleware.Actor(c)
	if !policy.CanEditMoM(actor, &mom) {
		utils.Message(c, http.StatusForbidden, "Only creator or admin can update")
		return
	}

	var payload updateMoMPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Message(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	in := services.UpdateMoMInput{
		MeetingID: payload.MeetingID,
		CreatedBy: payload.CreatedBy,
		ActorID:   actor.ID,
	}
	if payload.Items != nil {
		items := toItemInputs(*payload.Items)
		in.Items = &items
	}

	updated, err := m.MoMs.Update(&mom, in)
	if err != nil {
		serviceError(c, err, "MoM", "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (m *MoMController) Destroy(c *gin.Context) {
	mom, err := m.MoMs.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "MoM", "")
		return
	}
	if !policy.CanEditMoM(middleware.Actor(c), &mom) {
		utils.Message(c, http.StatusForbidden, "Only creator or admin can delete")
		return
	}
	if err := m.MoMs.Delete(&mom); err != nil {
		serviceError(c, err, "MoM", "")
		return
	}
	utils.Message(c, http.StatusOK, "MoM deleted successfully")
}
