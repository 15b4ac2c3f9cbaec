package handlers

import (
	"errors"
	"strconv"
	"strings"

	"ia-admin/internal/models"

	"gorm.io/gorm"
)

// projectRef resolves the auditProject field, which carries a project id
// as a string.
func projectRef(db *gorm.DB, ref string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(ref), 10, 64)
	if err != nil || id == 0 {
		return 0, notFound("Audit Project must be an ID")
	}

	var count int64
	if err := db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, notFound("Audit Project must be an ID of an existing project")
	}
	return uint(id), nil
}

// teamLeaderRef resolves a team leader by employee name. An empty name
// clears the reference.
func teamLeaderRef(db *gorm.DB, name string) (*uint, error) {
	if name == "" {
		return nil, nil
	}

	var e models.Employee
	err := db.Select("id").Where("name = ?", name).Order("id asc").First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("TL (" + name + ") not found")
	}
	if err != nil {
		return nil, err
	}
	return &e.ID, nil
}

func employeeName(e *models.Employee) string {
	if e == nil {
		return ""
	}
	return e.Name
}
