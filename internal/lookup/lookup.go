// Package lookup resolves the display names used by the admin tables to
// lookup-table ids. Names are matched against the stored rows, so the order
// rows were inserted in carries no meaning.
package lookup

import (
	"errors"
	"fmt"

	"ia-admin/internal/models"

	"gorm.io/gorm"
)

// UnknownNameError reports a name with no row in its lookup table.
type UnknownNameError struct {
	Kind string
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("Given %s (%s) is not allowed", e.Kind, e.Name)
}

func resolve(db *gorm.DB, model any, kind, name string) (uint, error) {
	var ids []uint
	err := db.Model(model).Where("name = ?", name).Limit(1).Pluck("id", &ids).Error
	if err != nil {
		return 0, fmt.Errorf("resolve %s %q: %w", kind, name, err)
	}
	if len(ids) == 0 {
		return 0, &UnknownNameError{Kind: kind, Name: name}
	}
	return ids[0], nil
}

func DivisionID(db *gorm.DB, name string) (uint, error) {
	return resolve(db, &models.Division{}, "division", name)
}

func ProjectStatusID(db *gorm.DB, name string) (uint, error) {
	return resolve(db, &models.ProjectStatus{}, "status", name)
}

func RoleID(db *gorm.DB, name string) (uint, error) {
	return resolve(db, &models.Role{}, "role", name)
}

func SocialTypeID(db *gorm.DB, name string) (uint, error) {
	return resolve(db, &models.SocialType{}, "category", name)
}

func EngagementTypeID(db *gorm.DB, name string) (uint, error) {
	return resolve(db, &models.EngagementType{}, "engagement type", name)
}

func QATypeID(db *gorm.DB, name string) (uint, error) {
	return resolve(db, &models.QAType{}, "QA type", name)
}

func QAGradingResultID(db *gorm.DB, name string) (uint, error) {
	return resolve(db, &models.QAGradingResult{}, "result", name)
}

// IsUnknownName reports whether err is an UnknownNameError.
func IsUnknownName(err error) bool {
	var u *UnknownNameError
	return errors.As(err, &u)
}
