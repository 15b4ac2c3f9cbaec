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

const resourceBUSU = "busu"

type busuRow struct {
	ID       string `json:"id"`
	Division string `json:"division"`
	WorRM    string `json:"WorRM"` // workshop or regular meeting
	Activity string `json:"activity"`
	Date     string `json:"date"`
}

func newBUSURow(e models.BUSUEngagement) busuRow {
	return busuRow{
		ID:       idString(e.ID),
		Division: e.Division.Name,
		WorRM:    e.EngagementType.Name,
		Activity: e.ActivityName,
		Date:     report.FormatDate(&e.Date),
	}
}

type busuInput struct {
	Division *string `json:"division"`
	WorRM    *string `json:"WorRM"`
	Activity *string `json:"activity"`
	Date     *string `json:"date"`
}

func (in busuInput) applyTo(db *gorm.DB, e *models.BUSUEngagement) error {
	if in.Division != nil {
		id, err := lookup.DivisionID(db, *in.Division)
		if err != nil {
			return err
		}
		e.DivisionID = id
	}
	if in.WorRM != nil {
		id, err := lookup.EngagementTypeID(db, *in.WorRM)
		if err != nil {
			return err
		}
		e.EngagementTypeID = id
	}
	if in.Date != nil {
		d, err := parseDate("date", *in.Date)
		if err != nil {
			return err
		}
		e.Date = d
	}
	if in.Activity != nil {
		e.ActivityName = *in.Activity
	}
	return nil
}

func loadBUSU(id uint) (models.BUSUEngagement, error) {
	var e models.BUSUEngagement
	err := database.DB.Preload("Division").Preload("EngagementType").First(&e, id).Error
	return e, err
}

func ListBUSU(c *gin.Context) {
	year, ok := pathInt(c, "year")
	if !ok {
		return
	}
	start, end := report.YearRange(year)

	var engs []models.BUSUEngagement
	if err := database.DB.Preload("Division").Preload("EngagementType").
		Where("date >= ? AND date < ?", start, end).
		Order("date asc, id asc").
		Find(&engs).Error; err != nil {
		respondError(c, resourceBUSU, logging.OpList, err)
		return
	}

	rows := make([]busuRow, 0, len(engs))
	for _, e := range engs {
		rows = append(rows, newBUSURow(e))
	}
	c.JSON(http.StatusOK, rows)
}

func CreateBUSU(c *gin.Context) {
	var in busuInput
	if !bindJSON(c, &in) {
		return
	}

	if err := requireFields(
		need("division", in.Division != nil),
		need("WorRM", in.WorRM != nil),
		need("activity", in.Activity != nil),
		need("date", in.Date != nil),
	); err != nil {
		respondError(c, resourceBUSU, logging.OpCreate, err)
		return
	}

	// proof is collected outside this form
	e := models.BUSUEngagement{Proof: false}
	if err := in.applyTo(database.DB, &e); err != nil {
		respondError(c, resourceBUSU, logging.OpCreate, err)
		return
	}

	if err := database.DB.Omit(clause.Associations).Create(&e).Error; err != nil {
		respondError(c, resourceBUSU, logging.OpCreate, err)
		return
	}

	e, err := loadBUSU(e.ID)
	if err != nil {
		respondError(c, resourceBUSU, logging.OpCreate, err)
		return
	}
	c.JSON(http.StatusCreated, newBUSURow(e))
}

func UpdateBUSU(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var e models.BUSUEngagement
	if err := database.DB.First(&e, id).Error; err != nil {
		respondError(c, resourceBUSU, logging.OpUpdate, err)
		return
	}

	var in busuInput
	if !bindJSON(c, &in) {
		return
	}

	if err := in.applyTo(database.DB, &e); err != nil {
		respondError(c, resourceBUSU, logging.OpUpdate, err)
		return
	}

	if err := database.DB.Omit(clause.Associations).Save(&e).Error; err != nil {
		respondError(c, resourceBUSU, logging.OpUpdate, err)
		return
	}

	e, err := loadBUSU(id)
	if err != nil {
		respondError(c, resourceBUSU, logging.OpUpdate, err)
		return
	}
	c.JSON(http.StatusAccepted, newBUSURow(e))
}

func DeleteBUSU(c *gin.Context) {
	deleteRow[models.BUSUEngagement](c, resourceBUSU)
}
