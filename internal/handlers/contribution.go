package handlers

import (
	"net/http"

	"ia-admin/internal/database"
	"ia-admin/internal/logging"
	"ia-admin/internal/lookup"
	"ia-admin/internal/models"
	"ia-admin/internal/report"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const resourceContribution = "audit_contribution"

type contributionRow struct {
	ID       string `json:"id"`
	Division string `json:"division"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Date     string `json:"date"`
}

func newContributionRow(s models.SocialContrib) contributionRow {
	return contributionRow{
		ID:       idString(s.ID),
		Division: s.Division.Name,
		Category: s.SocialType.Name,
		Title:    s.TopicName,
		Date:     report.FormatDate(&s.Date),
	}
}

type contributionInput struct {
	Division *string `json:"division"`
	Category *string `json:"category"`
	Title    *string `json:"title"`
	Date     *string `json:"date"`
}

func (in contributionInput) applyTo(db *gorm.DB, s *models.SocialContrib) error {
	if in.Division != nil {
		id, err := lookup.DivisionID(db, *in.Division)
		if err != nil {
			return err
		}
		s.DivisionID = id
	}
	if in.Category != nil {
		id, err := lookup.SocialTypeID(db, *in.Category)
		if err != nil {
			return err
		}
		s.SocialTypeID = id
	}
	if in.Date != nil {
		d, err := parseDate("date", *in.Date)
		if err != nil {
			return err
		}
		s.Date = d
	}
	if in.Title != nil {
		s.TopicName = *in.Title
	}
	return nil
}

func loadContribution(id uint) (models.SocialContrib, error) {
	var s models.SocialContrib
	err := database.DB.Preload("Division").Preload("SocialType").First(&s, id).Error
	return s, err
}

func ListContributions(c *gin.Context) {
	year, ok := pathInt(c, "year")
	if !ok {
		return
	}
	start, end := report.YearRange(year)

	var contribs []models.SocialContrib
	if err := database.DB.Preload("Division").Preload("SocialType").
		Where("date >= ? AND date < ?", start, end).
		Order("date asc, id asc").
		Find(&contribs).Error; err != nil {
		respondError(c, resourceContribution, logging.OpList, err)
		return
	}

	rows := make([]contributionRow, 0, len(contribs))
	for _, s := range contribs {
		rows = append(rows, newContributionRow(s))
	}
	c.JSON(http.StatusOK, rows)
}

func CreateContribution(c *gin.Context) {
	var in contributionInput
	if !bindJSON(c, &in) {
		return
	}

	if err := requireFields(
		need("division", in.Division != nil),
		need("category", in.Category != nil),
		need("title", in.Title != nil),
		need("date", in.Date != nil),
	); err != nil {
		respondError(c, resourceContribution, logging.OpCreate, err)
		return
	}

	var s models.SocialContrib
	if err := in.applyTo(database.DB, &s); err != nil {
		respondError(c, resourceContribution, logging.OpCreate, err)
		return
	}

	if err := database.DB.Omit(clause.Associations).Create(&s).Error; err != nil {
		respondError(c, resourceContribution, logging.OpCreate, err)
		return
	}

	s, err := loadContribution(s.ID)
	if err != nil {
		respondError(c, resourceContribution, logging.OpCreate, err)
		return
	}
	c.JSON(http.StatusCreated, newContributionRow(s))
}

func UpdateContribution(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var s models.SocialContrib
	if err := database.DB.First(&s, id).Error; err != nil {
		respondError(c, resourceContribution, logging.OpUpdate, err)
		return
	}

	var in contributionInput
	if !bindJSON(c, &in) {
		return
	}

	if err := in.applyTo(database.DB, &s); err != nil {
		respondError(c, resourceContribution, logging.OpUpdate, err)
		return
	}

	if err := database.DB.Omit(clause.Associations).Save(&s).Error; err != nil {
		respondError(c, resourceContribution, logging.OpUpdate, err)
		return
	}

	s, err := loadContribution(id)
	if err != nil {
		respondError(c, resourceContribution, logging.OpUpdate, err)
		return
	}
	c.JSON(http.StatusAccepted, newContributionRow(s))
}

func DeleteContribution(c *gin.Context) {
	deleteRow[models.SocialContrib](c, resourceContribution)
}
