package services

import (
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/SamiMK0/smart-room-management-system/models"
)

type MoMService struct {
	DB *gorm.DB
}

func NewMoMService(db *gorm.DB) *MoMService {
	return &MoMService{DB: db}
}

type MoMItemInput struct {
	ItemType      string
	Content       string
	SequenceOrder int
	AssignedTo    *uint
	DueDate       *datatypes.Date
}

// ValidateItems enforces the per-type rules: action items carry a mandatory
// assignee and due date, other types leave both null.
func ValidateItems(items []MoMItemInput) error {
	for _, item := range items {
		switch item.ItemType {
		case models.MoMItemDiscussion, models.MoMItemDecision, models.MoMItemActionItem:
		default:
			return validationErr("items.item_type", "must be discussion, decision or action_item")
		}
		if strings.TrimSpace(item.Content) == "" {
			return validationErr("items.content", "is required")
		}
		if item.ItemType == models.MoMItemActionItem {
			if item.AssignedTo == nil {
				return validationErr("items.assigned_to", "is required for action items")
			}
			if item.DueDate == nil {
				return validationErr("items.due_date", "is required for action items")
			}
		}
	}
	return nil
}

func buildItems(momID uint, creatorID uint, items []MoMItemInput) []models.MoMItem {
	rows := make([]models.MoMItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, models.MoMItem{
			MoMID:         momID,
			ItemType:      item.ItemType,
			Content:       item.Content,
			SequenceOrder: item.SequenceOrder,
			AssignedTo:    item.AssignedTo,
			DueDate:       item.DueDate,
			UserID:        creatorID,
		})
	}
	return rows
}

type CreateMoMInput struct {
	MeetingID uint
	CreatedBy uint
	ActorID   uint
	Items     []MoMItemInput
}

// Create stores a MoM header and its items in one transaction.
func (s *MoMService) Create(in CreateMoMInput) (models.MoM, error) {
	if err := ValidateItems(in.Items); err != nil {
		return models.MoM{}, err
	}

	var mom models.MoM
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := validateUserIDs(tx, []uint{in.CreatedBy}); err != nil {
			return validationErr("created_by", "user does not exist")
		}

		mom = models.MoM{MeetingID: in.MeetingID, CreatedBy: in.CreatedBy}
		if err := tx.Create(&mom).Error; err != nil {
			return err
		}
		if len(in.Items) == 0 {
			return nil
		}
		return tx.Create(buildItems(mom.ID, in.ActorID, in.Items)).Error
	})
	if err != nil {
		return models.MoM{}, err
	}
	return s.Get(mom.ID)
}

// Get loads a MoM with its meeting (booking + attendees for policy), creator
// and items.
func (s *MoMService) Get(id uint) (models.MoM, error) {
	var mom models.MoM
	err := s.DB.
		Preload("Meeting.Booking").
		Preload("Meeting.Attendees").
		Preload("Creator").
		Preload("Items.Assignee").
		First(&mom, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MoM{}, ErrNotFound
		}
		return models.MoM{}, err
	}
	return mom, nil
}

// GetByMeeting finds the MoM attached to a meeting, if any.
func (s *MoMService) GetByMeeting(meetingID uint) (models.MoM, error) {
	var mom models.MoM
	err := s.DB.
		Preload("Meeting.Booking").
		Preload("Meeting.Attendees").
		Preload("Creator").
		Preload("Items.Assignee").
		Where("meeting_id = ?", meetingID).
		First(&mom).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MoM{}, ErrNotFound
		}
		return models.MoM{}, err
	}
	return mom, nil
}

// List returns every MoM for admins; otherwise the ones the actor created or
// whose meetings they attend.
func (s *MoMService) List(actor *models.User) ([]models.MoM, error) {
	q := s.DB.Preload("Meeting").Preload("Creator").Preload("Items")
	if !actor.IsAdmin() {
		q = q.Where(
			"created_by = ? OR meeting_id IN (SELECT meeting_id FROM meeting_attendees WHERE user_id = ?)",
			actor.ID, actor.ID,
		)
	}

	var moms []models.MoM
	if err := q.Find(&moms).Error; err != nil {
		return nil, err
	}
	return moms, nil
}

// ListCreatedBy returns the MoMs a user authored.
func (s *MoMService) ListCreatedBy(userID uint) ([]models.MoM, error) {
	var moms []models.MoM
	err := s.DB.
		Preload("Meeting").
		Preload("Creator").
		Preload("Items").
		Where("created_by = ?", userID).
		Find(&moms).Error
	return moms, err
}

type UpdateMoMInput struct {
	MeetingID *uint
	CreatedBy *uint
	ActorID   uint
	// Items, when present, wholesale-replaces the item list: every existing
	// row is deleted and the new list inserted. Item ids churn by design.
	Items *[]MoMItemInput
}

func (s *MoMService) Update(mom *models.MoM, in UpdateMoMInput) (models.MoM, error) {
	if in.Items != nil {
		if err := ValidateItems(*in.Items); err != nil {
			return models.MoM{}, err
		}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{}
		if in.MeetingID != nil {
			var meeting models.Meeting
			if err := tx.First(&meeting, *in.MeetingID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return validationErr("meeting_id", "meeting does not exist")
				}
				return err
			}
			var linked int64
			if err := tx.Model(&models.MoM{}).
				Where("meeting_id = ? AND id <> ?", *in.MeetingID, mom.ID).
				Count(&linked).Error; err != nil {
				return err
			}
			if linked > 0 {
				return validationErr("meeting_id", "meeting already has a MoM")
			}
			updates["meeting_id"] = *in.MeetingID
		}
		if in.CreatedBy != nil {
			if err := validateUserIDs(tx, []uint{*in.CreatedBy}); err != nil {
				return validationErr("created_by", "user does not exist")
			}
			updates["created_by"] = *in.CreatedBy
		}
		if len(updates) > 0 {
			if err := tx.Model(mom).Updates(updates).Error; err != nil {
				return err
			}
		}

		if in.Items != nil {
			if err := tx.Where("mom_id = ?", mom.ID).Delete(&models.MoMItem{}).Error; err != nil {
				return err
			}
			if len(*in.Items) == 0 {
				return nil
			}
			return tx.Create(buildItems(mom.ID, in.ActorID, *in.Items)).Error
		}
		return nil
	})
	if err != nil {
		return models.MoM{}, err
	}
	return s.Get(mom.ID)
}

func (s *MoMService) Delete(mom *models.MoM) error {
	return s.DB.Delete(&models.MoM{}, mom.ID).Error
}

// --- items ---

type CreateMoMItemInput struct {
	MoMID   uint
	ActorID uint
	Item    MoMItemInput
}

func (s *MoMService) CreateItem(in CreateMoMItemInput) (models.MoMItem, error) {
	if err := ValidateItems([]MoMItemInput{in.Item}); err != nil {
		return models.MoMItem{}, err
	}
	rows := buildItems(in.MoMID, in.ActorID, []MoMItemInput{in.Item})
	if err := s.DB.Create(&rows[0]).Error; err != nil {
		return models.MoMItem{}, err
	}
	return s.GetItem(rows[0].ID)
}

func (s *MoMService) GetItem(id uint) (models.MoMItem, error) {
	var item models.MoMItem
	err := s.DB.
		Preload("MoM.Meeting.Booking").
		Preload("MoM.Meeting.Attendees").
		Preload("Creator").
		Preload("Assignee").
		First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MoMItem{}, ErrNotFound
		}
		return models.MoMItem{}, err
	}
	return item, nil
}

// ListItems returns every item for admins; otherwise items from meetings the
// actor attends plus items assigned to them.
func (s *MoMService) ListItems(actor *models.User) ([]models.MoMItem, error) {
	q := s.DB.
		Preload("MoM.Meeting.Attendees").
		Preload("Creator").
		Preload("Assignee")
	if !actor.IsAdmin() {
		q = q.Where(
			"mom_id IN (SELECT id FROM moms WHERE meeting_id IN (SELECT meeting_id FROM meeting_attendees WHERE user_id = ?)) OR assigned_to = ?",
			actor.ID, actor.ID,
		)
	}

	var items []models.MoMItem
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListItemsAssignedTo returns the items assigned to a user.
func (s *MoMService) ListItemsAssignedTo(userID uint) ([]models.MoMItem, error) {
	var items []models.MoMItem
	err := s.DB.
		Preload("MoM").
		Preload("Creator").
		Preload("Assignee").
		Where("assigned_to = ?", userID).
		Find(&items).Error
	return items, err
}

type UpdateMoMItemInput struct {
	ItemType      *string
	Content       *string
	SequenceOrder *int
	AssignedTo    *uint
	DueDate       *datatypes.Date
}

func (s *MoMService) UpdateItem(item *models.MoMItem, in UpdateMoMItemInput) (models.MoMItem, error) {
	merged := MoMItemInput{
		ItemType:      item.ItemType,
		Content:       item.Content,
		SequenceOrder: item.SequenceOrder,
		AssignedTo:    item.AssignedTo,
		DueDate:       item.DueDate,
	}
	updates := map[string]any{}
	if in.ItemType != nil {
		merged.ItemType = *in.ItemType
		updates["item_type"] = *in.ItemType
	}
	if in.Content != nil {
		merged.Content = *in.Content
		updates["content"] = *in.Content
	}
	if in.SequenceOrder != nil {
		merged.SequenceOrder = *in.SequenceOrder
		updates["sequence_order"] = *in.SequenceOrder
	}
	if in.AssignedTo != nil {
		merged.AssignedTo = in.AssignedTo
		updates["assigned_to"] = *in.AssignedTo
	}
	if in.DueDate != nil {
		merged.DueDate = in.DueDate
		updates["due_date"] = *in.DueDate
	}
	if err := ValidateItems([]MoMItemInput{merged}); err != nil {
		return models.MoMItem{}, err
	}

	if len(updates) > 0 {
		if err := s.DB.Model(item).Updates(updates).Error; err != nil {
			return models.MoMItem{}, err
		}
	}
	return s.GetItem(item.ID)
}

func (s *MoMService) DeleteItem(item *models.MoMItem) error {
	return s.DB.Delete(&models.MoMItem{}, item.ID).Error
}
