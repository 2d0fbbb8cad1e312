package services

import (
	"errors"
	"strings"

	"github.com/quantalyze/backoffice/internal/models"
	"gorm.io/gorm"
)

// ErrInvalidInquiry is returned when a contact submission is missing the
// fields the sales team needs to reply.
var ErrInvalidInquiry = errors.New("name, email and message are required")

// ErrInvalidStatus is returned when a workflow update names a status the
// resource does not have.
var ErrInvalidStatus = errors.New("unknown status")

// CreateInquiry stores one contact-form submission. This is the only write
// path with no auth in front of it, so it validates strictly.
func CreateInquiry(db *gorm.DB, inq *models.Inquiry) error {
	inq.Name = strings.TrimSpace(inq.Name)
	inq.Email = strings.TrimSpace(inq.Email)
	inq.Message = strings.TrimSpace(inq.Message)
	if inq.Name == "" || inq.Email == "" || inq.Message == "" {
		return ErrInvalidInquiry
	}
	if !strings.Contains(inq.Email, "@") {
		return ErrInvalidInquiry
	}
	inq.Status = models.InquiryStatusNew
	return db.Create(inq).Error
}

// ListInquiries returns inquiries for the admin dashboard, newest first.
func ListInquiries(db *gorm.DB, status string) ([]models.Inquiry, error) {
	q := db.Model(&models.Inquiry{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rows []models.Inquiry
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// UpdateInquiryStatus moves an inquiry through the triage workflow.
func UpdateInquiryStatus(db *gorm.DB, id uint64, status string) error {
	switch status {
	case models.InquiryStatusNew, models.InquiryStatusInProgress, models.InquiryStatusClosed:
	default:
		return ErrInvalidStatus
	}
	res := db.Model(&models.Inquiry{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
