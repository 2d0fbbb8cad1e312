package services

import (
	"github.com/quantalyze/backoffice/internal/audit"
	"github.com/quantalyze/backoffice/internal/models"
	"gorm.io/gorm"
)

var CoursesAudit = &audit.Logger{
	Table: "courses_history",
	State: rowStateFor[models.Course](),
}

func ListCourses(db *gorm.DB, opts ListOptions) ([]models.Course, error) {
	return listRows[models.Course](db, opts, "featured DESC, created_at DESC")
}

func GetCourse(db *gorm.DB, id uint64, includeDeleted bool) (*models.Course, error) {
	return getRow[models.Course](db, id, includeDeleted)
}

func CreateCourse(db *gorm.DB, course *models.Course) error {
	return createRow(db, CoursesAudit, course)
}

func UpdateCourse(db *gorm.DB, id uint64, updates map[string]any) error {
	return updateRow[models.Course](db, CoursesAudit, id, updates)
}

func DeleteCourse(db *gorm.DB, id uint64) error {
	return softDeleteRow[models.Course](db, CoursesAudit, id, models.StatusInactive)
}

func RestoreCourse(db *gorm.DB, id uint64) error {
	return restoreRow[models.Course](db, CoursesAudit, id, models.StatusActive)
}
