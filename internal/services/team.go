package services

import (
	"github.com/quantalyze/backoffice/internal/audit"
	"github.com/quantalyze/backoffice/internal/models"
	"gorm.io/gorm"
)

var TeamAudit = &audit.Logger{
	Table: "team_members_history",
	State: rowStateFor[models.TeamMember](),
}

func ListTeamMembers(db *gorm.DB, opts ListOptions) ([]models.TeamMember, error) {
	return listRows[models.TeamMember](db, opts, "display_order ASC, created_at DESC")
}

func GetTeamMember(db *gorm.DB, id uint64, includeDeleted bool) (*models.TeamMember, error) {
	return getRow[models.TeamMember](db, id, includeDeleted)
}

func CreateTeamMember(db *gorm.DB, member *models.TeamMember) error {
	return createRow(db, TeamAudit, member)
}

func UpdateTeamMember(db *gorm.DB, id uint64, updates map[string]any) error {
	return updateRow[models.TeamMember](db, TeamAudit, id, updates)
}

func DeleteTeamMember(db *gorm.DB, id uint64) error {
	return softDeleteRow[models.TeamMember](db, TeamAudit, id, models.StatusInactive)
}

func RestoreTeamMember(db *gorm.DB, id uint64) error {
	return restoreRow[models.TeamMember](db, TeamAudit, id, models.StatusActive)
}
