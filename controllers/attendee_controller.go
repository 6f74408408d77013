package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SamiMK0/smart-room-management-system/middleware"
	"github.com/SamiMK0/smart-room-management-system/policy"
	"github.com/SamiMK0/smart-room-management-system/services"
	"github.com/SamiMK0/smart-room-management-system/utils"
)

type AttendeeController struct {
	Meetings *services.MeetingService
}

func NewAttendeeController(meetings *services.MeetingService) *AttendeeController {
	return &AttendeeController{Meetings: meetings}
}

func (a *AttendeeController) Index(c *gin.Context) {
	meeting, err := a.Meetings.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Meeting", "")
		return
	}
	if !policy.CanManageAttendees(middleware.Actor(c), &meeting) {
		utils.Message(c, http.StatusForbidden, "Unauthorized to view attendees")
		return
	}

	attendees, err := a.Meetings.Attendees(meeting.ID)
	if err != nil {
		serviceError(c, err, "Meeting", "")
		return
	}
	c.JSON(http.StatusOK, attendees)
}

type addAttendeePayload struct {
	UserID uint `json:"user_id"`
}

func (a *AttendeeController) Store(c *gin.Context) {
	var payload addAttendeePayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.UserID == 0 {
		utils.FieldErrors(c, http.StatusBadRequest, map[string]string{"user_id": "The user_id field is required."})
		return
	}

	meeting, err := a.Meetings.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Meeting", "")
		return
	}
	if !policy.CanManageAttendees(middleware.Actor(c), &meeting) {
		utils.Message(c, http.StatusForbidden, "Only meeting organizer can add attendees")
		return
	}

	attendee, err := a.Meetings.AddAttendee(meeting.ID, payload.UserID)
	if err != nil {
		serviceError(c, err, "Meeting attendee", "User is already an attendee")
		return
	}
	c.JSON(http.StatusCreated, attendee)
}

func (a *AttendeeController) Show(c *gin.Context) {
	attendee, err := a.Meetings.GetAttendee(idParam(c, "attendeeId"))
	if err != nil {
		serviceError(c, err, "Meeting attendee", "")
		return
	}
	if !policy.CanViewAttendee(middleware.Actor(c), &attendee) {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, attendee)
}

type updateAttendeePayload struct {
	UserID    *uint `json:"user_id"`
	MeetingID *uint `json:"meeting_id"`
}

// Update reassigns an attendee record. Admin only.
func (a *AttendeeController) Update(c *gin.Context) {
	attendee, err := a.Meetings.GetAttendee(idParam(c, "attendeeId"))
	if err != nil {
		serviceError(c, err, "Meeting attendee", "")
		return
	}
	if !middleware.Actor(c).IsAdmin() {
		utils.Message(c, http.StatusForbidden, "Only admin can update attendees")
		return
	}

	var payload updateAttendeePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Message(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := a.Meetings.UpdateAttendee(&attendee, services.UpdateAttendeeInput{
		UserID:    payload.UserID,
		MeetingID: payload.MeetingID,
	})
	if err != nil {
		serviceError(c, err, "Meeting attendee", "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (a *AttendeeController) Destroy(c *gin.Context) {
	attendee, err := a.Meetings.GetAttendee(idParam(c, "attendeeId"))
	if err != nil {
		serviceError(c, err, "Meeting attendee", "")
		return
	}
	actor := middleware.Actor(c)
	if attendee.Meeting == nil || !policy.CanManageAttendees(actor, attendee.Meeting) {
		utils.Message(c, http.StatusForbidden, "Unauthorized to remove attendee")
		return
	}
	if err := a.Meetings.RemoveAttendee(&attendee); err != nil {
		serviceError(c, err, "Meeting attendee", "")
		return
	}
	utils.Message(c, http.StatusOK, "Meeting attendee deleted successfully")
}
