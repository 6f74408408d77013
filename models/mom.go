package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	MoMItemDiscussion = "discussion"
	MoMItemDecision   = "decision"
	MoMItemActionItem = "action_item"
)

// MoM is a minutes-of-meeting header. One per meeting by convention; the
// pairing is not enforced by the schema, only by the create path.
type MoM struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	MeetingID uint `gorm:"index;column:meeting_id" json:"meeting_id"`
	CreatedBy uint `gorm:"index;column:created_by" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Meeting *Meeting  `gorm:"foreignKey:MeetingID" json:"meeting,omitempty"`
	Creator *User     `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Items   []MoMItem `gorm:"foreignKey:MoMID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (MoM) TableName() string {
	return "moms"
}

type MoMItem struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	MoMID         uint            `gorm:"index;column:mom_id" json:"mom_id"`
	ItemType      string          `gorm:"column:item_type;size:32" json:"item_type"`
	Content       string          `gorm:"type:text" json:"content"`
	SequenceOrder int             `gorm:"column:sequence_order" json:"sequence_order"`
	AssignedTo    *uint           `gorm:"column:assigned_to" json:"assigned_to"`
	DueDate       *datatypes.Date `gorm:"column:due_date" json:"due_date"`
	UserID        uint            `gorm:"column:user_id" json:"user_id"` // who wrote the item

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MoM      *MoM  `gorm:"foreignKey:MoMID" json:"mom,omitempty"`
	Assignee *User `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
	Creator  *User `gorm:"foreignKey:UserID" json:"creator,omitempty"`
}

func (MoMItem) TableName() string {
	return "mom_items"
}
