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

const roomBookedMsg = "The room is already booked for the selected time period"

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

func (b *BookingController) Index(c *gin.Context) {
	bookings, err := b.Bookings.List(middleware.Actor(c))
	if err != nil {
		serviceError(c, err, "Booking", roomBookedMsg)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (b *BookingController) Stats(c *gin.Context) {
	stats, err := b.Bookings.Stats(middleware.Actor(c), time.Now())
	if err != nil {
		serviceError(c, err, "Booking", roomBookedMsg)
		return
	}
	c.JSON(http.StatusOK, stats)
}

type createBookingPayload struct {
	RoomID        uint       `json:"room_id"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	BookingStatus string     `json:"booking_status"`
	UserID        uint       `json:"user_id"`
}

func (b *BookingController) Store(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Message(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	actor := middleware.Actor(c)

	errs := map[string]string{}
	if payload.RoomID == 0 {
		errs["room_id"] = "The room_id field is required."
	}
	if payload.StartTime == nil {
		errs["start_time"] = "The start_time field is required."
	}
	if payload.EndTime == nil {
		errs["end_time"] = "The end_time field is required."
	} else if payload.StartTime != nil && !payload.StartTime.Before(*payload.EndTime) {
		errs["end_time"] = "The end_time must be a date after start_time."
	}
	if payload.BookingStatus == "" {
		errs["booking_status"] = "The booking_status field is required."
	}
	if actor.IsAdmin() && payload.UserID == 0 {
		errs["user_id"] = "The user_id field is required."
	}
	if len(errs) > 0 {
		utils.FieldErrors(c, http.StatusBadRequest, errs)
		return
	}

	// Admins may book on behalf of another user; everyone else books for
	// themselves regardless of what the payload says.
	userID := actor.ID
	if actor.IsAdmin() {
		userID = payload.UserID
	}

	booking, err := b.Bookings.Create(services.CreateBookingInput{
		UserID:    userID,
		RoomID:    payload.RoomID,
		StartTime: *payload.StartTime,
		EndTime:   *payload.EndTime,
		Status:    payload.BookingStatus,
	})
	if err != nil {
		serviceError(c, err, "Booking", roomBookedMsg)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (b *BookingController) Show(c *gin.Context) {
	booking, err := b.Bookings.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Booking", roomBookedMsg)
		return
	}
	if !policy.CanAccessBooking(middleware.Actor(c), &booking) {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, booking)
}

type updateBookingPayload struct {
	RoomID        *uint      `json:"room_id"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	BookingStatus *string    `json:"booking_status"`
	UserID        *uint      `json:"user_id"`
}

func (b *BookingController) Update(c *gin.Context) {
	booking, err := b.Bookings.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Booking", roomBookedMsg)
		return
	}

	actor := middleware.Actor(c)
	if !policy.CanAccessBooking(actor, &booking) {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}

	var payload updateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Message(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	in := services.UpdateBookingInput{
		RoomID:    payload.RoomID,
		StartTime: payload.StartTime,
		EndTime:   payload.EndTime,
		Status:    payload.BookingStatus,
	}
	// Only admins can reassign the owner.
	if actor.IsAdmin() {
		in.UserID = payload.UserID
	}

	updated, err := b.Bookings.Update(&booking, in)
	if err != nil {
		serviceError(c, err, "Booking", roomBookedMsg)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (b *BookingController) Destroy(c *gin.Context) {
	booking, err := b.Bookings.Get(idParam(c, "id"))
	if err != nil {
		serviceError(c, err, "Booking", roomBookedMsg)
		return
	}
	if !policy.CanAccessBooking(middleware.Actor(c), &booking) {
		utils.Message(c, http.StatusForbidden, "Unauthorized")
		return
	}
	if err := b.Bookings.Delete(&booking); err != nil {
		serviceError(c, err, "Booking", roomBookedMsg)
		return
	}
	utils.Message(c, http.StatusOK, "Booking deleted successfully")
}
