package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SamiMK0/smart-room-management-system/middleware"
	"github.com/SamiMK0/smart-room-management-system/policy"
	"github.com/SamiMK0/smart-room-management-system/services"
	"github.com/SamiMK0/smart-room-management-system/utils"
)

type MeetingController struct {
	Meetings *services.MeetingService
}

func NewMeetingController(meetings *services.MeetingService) *MeetingController {
	return &MeetingController{Meetings: meetings}
}

func (m *MeetingController) Index(c *gin.Context) {
	meetings, err := m.Meetings.List(middleware.Actor(c))
	if err != nil {
		serviceError(c, err, "Meeting", "")
		return
	}
	c.JSON(http.StatusOK, meetings)
}

type createMeetingPayload struct {
	BookingID uint   `json:"booking_id"`
	Title     string `json:"title"`
	Agenda    string `json:"agenda"`
	Attendees []uint `json:"attendees"`
}

func (m *MeetingController) Store(c *gin.Context) {
	var payload createMeetingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Message(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	errs := map[string]string{}
	if payload.BookingID == 0 {
		errs["booking_id"] = "The booking_id field is required."
	}
	if strings.TrimSpace(payload.Title) == "" {
		errs["title"] = "The title field is required."
	}
	if strings.TrimSpace(payload.Agenda) == "" {
		errs["agenda"] = "The agenda field is required."
	}
	if len(errs) > 0 {
		utils.FieldErrors(c, http.StatusBadRequest, errs)
		return
	}

	meeting, err := m.Meetings.Create(services.CreateMeetingInput{
		BookingID: payload.BookingID,
		Title:     payload.Title,
		Agenda:    payload.Agenda,
		Attendees: payload.Attendees,
	})
	if err != nil {
		serviceError(c, err, "Meeting", "")
		return
	}
	c.JSON(http.StatusCreated, meeting)
}

func (m *MeetingController) Show(c *gin.Context) {
	meeting, err := m.Meetings.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Meeting", "")
		return
	}
	if !policy.CanViewMeeting(middleware.Actor(c), &meeting) {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, meeting)
}

type updateMeetingPayload struct {
	BookingID *uint   `json:"booking_id"`
	Title     *string `json:"title"`
	Agenda    *string `json:"agenda"`
	Attendees *[]uint `json:"attendees"`
}

func (m *MeetingController) Update(c *gin.Context) {
	meeting, err := m.Meetings.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Meeting", "")
		return
	}
	if !policy.CanManageMeeting(middleware.Actor(c), &meeting) {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}

	var payload updateMeetingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Message(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := m.Meetings.Update(&meeting, services.UpdateMeetingInput{
		BookingID: payload.BookingID,
		Title:     payload.Title,
		Agenda:    payload.Agenda,
		Attendees: payload.Attendees,
	})
	if err != nil {
		serviceError(c, err, "Meeting", "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (m *MeetingController) Destroy(c *gin.Context) {
	meeting, err := m.Meetings.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Meeting", "")
		return
	}
	if !policy.CanManageMeeting(middleware.Actor(c), &meeting) {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}
	if err := m.Meetings.Delete(&meeting); err != nil {
		serviceError(c, err, "Meeting", "")
		return
	}
	utils.Message(c, http.StatusOK, "Meeting deleted successfully")
}
