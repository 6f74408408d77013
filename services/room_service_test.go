package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SamiMK0/smart-room-management-system/models"
)

func seedFeature(t *testing.T, db *gorm.DB, name string) models.FeatureName {
	t.Helper()
	feature := models.FeatureName{Name: name}
	require.NoError(t, db.Create(&feature).Error)
	return feature
}

func TestCreateRoomWithFeatures(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	projector := seedFeature(t, db, "Projector")
	whiteboard := seedFeature(t, db, "Whiteboard")

	room, err := svc.Create(CreateRoomInput{
		Name:     "Boardroom",
		Capacity: 12,
		Location: "Floor 3",
		Features: []uint{projector.ID, whiteboard.ID},
	})
	require.NoError(t, err)
	assert.Len(t, room.Features, 2)
}

func TestCreateRoomDuplicateNameAndLocation(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	_, err := svc.Create(CreateRoomInput{Name: "Boardroom", Capacity: 12, Location: "Floor 3"})
	require.NoError(t, err)

	// Same name elsewhere is fine.
	_, err = svc.Create(CreateRoomInput{Name: "Boardroom", Capacity: 8, Location: "Floor 4"})
	require.NoError(t, err)

	_, err = svc.Create(CreateRoomInput{Name: "Boardroom", Capacity: 6, Location: "Floor 3"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateRoomReplacesFeatures(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	projector := seedFeature(t, db, "Projector")
	whiteboard := seedFeature(t, db, "Whiteboard")

	room, err := svc.Create(CreateRoomInput{
		Name: "Boardroom", Capacity: 12, Location: "Floor 3",
		Features: []uint{projector.ID},
	})
	require.NoError(t, err)

	newList := []uint{whiteboard.ID}
	updated, err := svc.Update(&room, UpdateRoomInput{Features: &newList})
	require.NoError(t, err)
	require.Len(t, updated.Features, 1)
	assert.Equal(t, "Whiteboard", updated.Features[0].Name)
}

func TestAttachAndDetachFeature(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	projector := seedFeature(t, db, "Projector")
	room, err := svc.Create(CreateRoomInput{Name: "Boardroom", Capacity: 12, Location: "Floor 3"})
	require.NoError(t, err)

	attached, err := svc.AttachFeature(room.ID, projector.ID)
	require.NoError(t, err)
	assert.Equal(t, projector.ID, attached.ID)

	t.Run("second attach conflicts", func(t *testing.T) {
		_, err := svc.AttachFeature(room.ID, projector.ID)
		require.ErrorIs(t, err, ErrConflict)
	})

	require.NoError(t, svc.DetachFeature(room.ID, projector.ID))

	t.Run("detach of an unassigned feature is not found", func(t *testing.T) {
		err := svc.DetachFeature(room.ID, projector.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteRoomClearsFeatureLinks(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	projector := seedFeature(t, db, "Projector")
	room, err := svc.Create(CreateRoomInput{
		Name: "Boardroom", Capacity: 12, Location: "Floor 3",
		Features: []uint{projector.ID},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(&room))
	_, err = svc.Get(room.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// The feature itself survives, only the link goes.
	var features []models.FeatureName
	require.NoError(t, db.Find(&features).Error)
	assert.Len(t, features, 1)
}

func TestFeatureServiceDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeatureService(db)

	_, err := svc.Create("Projector")
	require.NoError(t, err)

	_, err = svc.Create("Projector")
	require.ErrorIs(t, err, ErrValidation)
}
