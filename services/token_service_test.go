package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamiMK0/smart-room-management-system/models"
)

func TestTokenIssueVerifyRevoke(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, "test-secret", time.Hour)
	user := seedUser(t, db, models.RoleUser)

	token, err := svc.Issue(&user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verified, record, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, verified.ID)
	assert.Equal(t, user.ID, record.UserID)

	require.NoError(t, svc.Revoke(record.ID))
	_, _, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenVerifyRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, "test-secret", time.Hour)

	_, _, err := svc.Verify("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenVerifyRejectsWrongSecret(t *testing.T) {
	db := newTestDB(t)
	issuer := NewTokenService(db, "secret-one", time.Hour)
	verifier := NewTokenService(db, "secret-two", time.Hour)
	user := seedUser(t, db, models.RoleUser)

	token, err := issuer.Issue(&user)
	require.NoError(t, err)

	_, _, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenVerifyRejectsExpired(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, "test-secret", -time.Minute)
	user := seedUser(t, db, models.RoleUser)

	token, err := svc.Issue(&user)
	require.NoError(t, err)

	_, _, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRevokedTokenDisappearsFromStore(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, "test-secret", time.Hour)
	user := seedUser(t, db, models.RoleUser)

	_, err := svc.Issue(&user)
	require.NoError(t, err)

	var records []models.AccessToken
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 1)

	require.NoError(t, svc.Revoke(records[0].ID))
	require.NoError(t, db.Find(&records).Error)
	assert.Empty(t, records)
}
