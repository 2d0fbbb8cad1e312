package services

import (
	"testing"

	"github.com/quantalyze/backoffice/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedAdmin(t *testing.T, db *gorm.DB, password string) *models.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.AdminUser{
		Username: "Admin",
		Email:    "admin@example.com",
		Password: string(hash),
		Role:     "admin",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	seedAdmin(t, db, "Sup3r-secret")

	user, err := Authenticate(db, "Admin", "Sup3r-secret")
	require.NoError(t, err)
	assert.Equal(t, "Admin", user.Username)
	require.NotNil(t, user.LastLogin)

	_, err = Authenticate(db, "Admin", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	// Unknown usernames fail the same way as wrong passwords.
	_, err = Authenticate(db, "nobody", "Sup3r-secret")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	user := seedAdmin(t, db, "Sup3r-secret")

	err := ChangePassword(db, user.ID, "wrong", "another-secret")
	assert.ErrorIs(t, err, ErrBadCredentials)

	err = ChangePassword(db, user.ID, "Sup3r-secret", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)

	require.NoError(t, ChangePassword(db, user.ID, "Sup3r-secret", "another-secret"))

	_, err = Authenticate(db, "Admin", "another-secret")
	assert.NoError(t, err)
	_, err = Authenticate(db, "Admin", "Sup3r-secret")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestCreateResetToken(t *testing.T) {
	db := setupTestDB(t)
	user := seedAdmin(t, db, "Sup3r-secret")

	token, err := CreateResetToken(db, "admin@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := GetAdminUser(db, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ResetToken)
	assert.Equal(t, token, *got.ResetToken)

	// Unknown addresses do not reveal whether an account exists.
	token, err = CreateResetToken(db, "stranger@example.com")
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestInquiryWorkflow(t *testing.T) {
	db := setupTestDB(t)

	err := CreateInquiry(db, &models.Inquiry{Name: "A", Email: "not-an-email", Message: "hi"})
	assert.ErrorIs(t, err, ErrInvalidInquiry)
	err = CreateInquiry(db, &models.Inquiry{Name: "  ", Email: "a@b.c", Message: "hi"})
	assert.ErrorIs(t, err, ErrInvalidInquiry)

	inq := models.Inquiry{Name: "Priya", Email: "priya@example.com", Subject: "SEO", Message: "Need an audit"}
	require.NoError(t, CreateInquiry(db, &inq))
	assert.Equal(t, models.InquiryStatusNew, inq.Status)

	require.NoError(t, UpdateInquiryStatus(db, inq.ID, models.InquiryStatusInProgress))
	assert.Error(t, UpdateInquiryStatus(db, inq.ID, "bogus"))
	assert.ErrorIs(t, UpdateInquiryStatus(db, 9999, models.InquiryStatusClosed), ErrNotFound)

	rows, err := ListInquiries(db, models.InquiryStatusInProgress)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Priya", rows[0].Name)

	rows, err = ListInquiries(db, "")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
