// Package policy centralizes the per-resource authorization predicates that
// gate every read and write. Each predicate is a pure function of the actor
// and an already-loaded resource; callers check existence first, so a 404
// always wins over a 403.
package policy

import (
	"github.com/SamiMK0/smart-room-management-system/models"
)

// IsOrganizer reports whether the actor owns the booking behind the meeting.
func IsOrganizer(actor *models.User, meeting *models.Meeting) bool {
	return meeting.Booking != nil && meeting.Booking.UserID == actor.ID
}

// IsAttendee reports whether the actor appears in the attendee list.
func IsAttendee(actor *models.User, attendees []models.MeetingAttendee) bool {
	for _, a := range attendees {
		if a.UserID == actor.ID {
			return true
		}
	}
	return false
}

// CanAccessBooking: admin or booking owner, for every action.
func CanAccessBooking(actor *models.User, booking *models.Booking) bool {
	return actor.IsAdmin() || booking.UserID == actor.ID
}

// CanViewMeeting: admin, organizer, or attendee.
func CanViewMeeting(actor *models.User, meeting *models.Meeting) bool {
	return actor.IsAdmin() || IsOrganizer(actor, meeting) || IsAttendee(actor, meeting.Attendees)
}

// CanManageMeeting: admin or organizer (update, delete).
func CanManageMeeting(actor *models.User, meeting *models.Meeting) bool {
	return actor.IsAdmin() || IsOrganizer(actor, meeting)
}

// CanManageAttendees: admin or organizer may add or remove attendees.
func CanManageAttendees(actor *models.User, meeting *models.Meeting) bool {
	return actor.IsAdmin() || IsOrganizer(actor, meeting)
}

// CanViewAttendee: admin, the meeting organizer, or the attendee themselves.
func CanViewAttendee(actor *models.User, attendee *models.MeetingAttendee) bool {
	if actor.IsAdmin() || attendee.UserID == actor.ID {
		return true
	}
	return attendee.Meeting != nil && IsOrganizer(actor, attendee.Meeting)
}

// CanViewMoM: admin, organizer, or any attendee of the parent meeting.
func CanViewMoM(actor *models.User, mom *models.MoM) bool {
	if actor.IsAdmin() {
		return true
	}
	if mom.Meeting == nil {
		return false
	}
	return IsOrganizer(actor, mom.Meeting) || IsAttendee(actor, mom.Meeting.Attendees)
}

// CanEditMoM: only the creator or an admin may write.
func CanEditMoM(actor *models.User, mom *models.MoM) bool {
	return actor.IsAdmin() || mom.CreatedBy == actor.ID
}

// CanViewMoMItem: admin, the assignee, or any attendee of the parent meeting.
func CanViewMoMItem(actor *models.User, item *models.MoMItem) bool {
	if actor.IsAdmin() {
		return true
	}
	if item.AssignedTo != nil && *item.AssignedTo == actor.ID {
		return true
	}
	if item.MoM == nil || item.MoM.Meeting == nil {
		return false
	}
	return IsAttendee(actor, item.MoM.Meeting.Attendees)
}

// CanEditMoMItem: item writes follow the parent MoM's edit rule.
func CanEditMoMItem(actor *models.User, item *models.MoMItem) bool {
	if actor.IsAdmin() {
		return true
	}
	return item.MoM != nil && item.MoM.CreatedBy == actor.ID
}

// CanAccessNotification: admin or the notified user (show, delete).
func CanAccessNotification(actor *models.User, n *models.Notification) bool {
	return actor.IsAdmin() || n.UserID == actor.ID
}

// CanAccessUser: admin or the user themselves (show, update, delete).
func CanAccessUser(actor *models.User, userID uint) bool {
	return actor.IsAdmin() || actor.ID == userID
}
