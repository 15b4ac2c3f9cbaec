package database

import (
	_ "embed"
	"fmt"

	"ia-admin/internal/models"

	"github.com/BurntSushi/toml"
	"gorm.io/gorm"
)

//go:embed catalog.toml
var defaultCatalog string

// Catalog lists the names seeded into each lookup table.
type Catalog struct {
	Divisions        []string `toml:"divisions"`
	ProjectStatuses  []string `toml:"project_statuses"`
	Roles            []string `toml:"roles"`
	SocialTypes      []string `toml:"social_types"`
	EngagementTypes  []string `toml:"engagement_types"`
	QATypes          []string `toml:"qa_types"`
	QAGradingResults []string `toml:"qa_grading_results"`
}

// LoadCatalog reads the catalog from path, or the embedded one when path is
// empty.
func LoadCatalog(path string) (Catalog, error) {
	var c Catalog
	if path == "" {
		if _, err := toml.Decode(defaultCatalog, &c); err != nil {
			return c, fmt.Errorf("decode embedded catalog: %w", err)
		}
		return c, nil
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return c, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return c, nil
}

// SeedCatalog inserts catalog names missing from the lookup tables and
// returns how many rows it created. Existing rows keep their ids.
func SeedCatalog(db *gorm.DB, c Catalog) (int, error) {
	created := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			names []string
			row   func(string) any
		}{
			{c.Divisions, func(n string) any { return &models.Division{Name: n} }},
			{c.ProjectStatuses, func(n string) any { return &models.ProjectStatus{Name: n} }},
			{c.Roles, func(n string) any { return &models.Role{Name: n} }},
			{c.SocialTypes, func(n string) any { return &models.SocialType{Name: n} }},
			{c.EngagementTypes, func(n string) any { return &models.EngagementType{Name: n} }},
			{c.QATypes, func(n string) any { return &models.QAType{Name: n} }},
			{c.QAGradingResults, func(n string) any { return &models.QAGradingResult{Name: n} }},
		}
		for _, s := range steps {
			for _, name := range s.names {
				row := s.row(name)

				var count int64
				if err := tx.Model(row).Where("name = ?", name).Count(&count).Error; err != nil {
					return fmt.Errorf("check %q: %w", name, err)
				}
				if count > 0 {
					continue
				}

				if err := tx.Create(row).Error; err != nil {
					return fmt.Errorf("seed %q: %w", name, err)
				}
				created++
			}
		}
		return nil
	})
	return created, err
}
