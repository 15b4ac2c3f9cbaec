package handlers

import (
	"fmt"
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

const resourceAttrition = "attrition"

type attritionRow struct {
	ID             string `json:"id"`
	Division       string `json:"division"`
	TotalBudgetHC  int    `json:"totalBudgetHC"`
	TotalHCNewYear int    `json:"totalHCNewYear"`
	Join           int    `json:"join"`
	Resign         int    `json:"resign"`
	Transfer       int    `json:"transfer"`
	AttritionRate  string `json:"attritionRate"`
	CurrentHC      int    `json:"CurrentHC"`
}

func newAttritionRow(division string, a *models.YearlyAttrition) attritionRow {
	if a == nil {
		return attritionRow{Division: division}
	}
	return attritionRow{
		ID:             idString(a.ID),
		Division:       division,
		TotalBudgetHC:  a.BudgetHeadcount,
		TotalHCNewYear: a.StartHeadcount,
		Join:           a.JoinedCount,
		Resign:         a.ResignedCount,
		Transfer:       a.TransferCount,
		AttritionRate:  report.AttritionRate(*a),
		CurrentHC:      report.CurrentHeadcount(*a),
	}
}

type attritionInput struct {
	Division       *string `json:"division"`
	TotalBudgetHC  *int    `json:"totalBudgetHC"`
	TotalHCNewYear *int    `json:"totalHCNewYear"`
	Join           *int    `json:"join"`
	Resign         *int    `json:"resign"`
	Transfer       *int    `json:"transfer"`
}

func (in attritionInput) applyTo(db *gorm.DB, a *models.YearlyAttrition) error {
	if in.Division != nil {
		id, err := lookup.DivisionID(db, *in.Division)
		if err != nil {
			return err
		}
		a.DivisionID = id
	}
	if in.TotalBudgetHC != nil {
		a.BudgetHeadcount = *in.TotalBudgetHC
	}
	if in.TotalHCNewYear != nil {
		a.StartHeadcount = *in.TotalHCNewYear
	}
	if in.Join != nil {
		a.JoinedCount = *in.Join
	}
	if in.Resign != nil {
		a.ResignedCount = *in.Resign
	}
	if in.Transfer != nil {
		a.TransferCount = *in.Transfer
	}
	return nil
}

// ensureSingleAttrition rejects a second entry for the same division and year.
func ensureSingleAttrition(db *gorm.DB, a models.YearlyAttrition) error {
	var count int64
	if err := db.Model(&models.YearlyAttrition{}).
		Where("year = ? AND division_id = ? AND id <> ?", a.Year, a.DivisionID, a.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &httpError{
			Status: http.StatusConflict,
			Detail: fmt.Sprintf("Attrition entry for this division in %d already exists", a.Year),
		}
	}
	return nil
}

func loadAttrition(id uint) (models.YearlyAttrition, error) {
	var a models.YearlyAttrition
	err := database.DB.Preload("Division").First(&a, id).Error
	return a, err
}

// ListAttrition returns one row per division, empty where nothing was
// recorded for the year.
func ListAttrition(c *gin.Context) {
	year, ok := pathInt(c, "year")
	if !ok {
		return
	}

	var divisions []models.Division
	if err := database.DB.Order("id asc").Find(&divisions).Error; err != nil {
		respondError(c, resourceAttrition, logging.OpList, err)
		return
	}

	var attrs []models.YearlyAttrition
	if err := database.DB.Where("year = ?", year).Order("id asc").Find(&attrs).Error; err != nil {
		respondError(c, resourceAttrition, logging.OpList, err)
		return
	}

	byDivision := make(map[uint]*models.YearlyAttrition, len(attrs))
	for i := range attrs {
		byDivision[attrs[i].DivisionID] = &attrs[i]
	}

	rows := make([]attritionRow, 0, len(divisions))
	for _, d := range divisions {
		rows = append(rows, newAttritionRow(d.Name, byDivision[d.ID]))
	}
	c.JSON(http.StatusOK, rows)
}

func CreateAttrition(c *gin.Context) {
	year, ok := pathInt(c, "year")
	if !ok {
		return
	}

	var in attritionInput
	if !bindJSON(c, &in) {
		return
	}

	if err := requireFields(need("division", in.Division != nil)); err != nil {
		respondError(c, resourceAttrition, logging.OpCreate, err)
		return
	}

	a := models.YearlyAttrition{Year: year}
	if err := in.applyTo(database.DB, &a); err != nil {
		respondError(c, resourceAttrition, logging.OpCreate, err)
		return
	}

	if err := ensureSingleAttrition(database.DB, a); err != nil {
		respondError(c, resourceAttrition, logging.OpCreate, err)
		return
	}

	if err := database.DB.Omit(clause.Associations).Create(&a).Error; err != nil {
		respondError(c, resourceAttrition, logging.OpCreate, err)
		return
	}

	a, err := loadAttrition(a.ID)
	if err != nil {
		respondError(c, resourceAttrition, logging.OpCreate, err)
		return
	}
	c.JSON(http.StatusCreated, newAttritionRow(a.Division.Name, &a))
}

func UpdateAttrition(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var a models.YearlyAttrition
	if err := database.DB.First(&a, id).Error; err != nil {
		respondError(c, resourceAttrition, logging.OpUpdate, err)
		return
	}

	var in attritionInput
	if !bindJSON(c, &in) {
		return
	}

	if err := in.applyTo(database.DB, &a); err != nil {
		respondError(c, resourceAttrition, logging.OpUpdate, err)
		return
	}

	if err := ensureSingleAttrition(database.DB, a); err != nil {
		respondError(c, resourceAttrition, logging.OpUpdate, err)
		return
	}

	if err := database.DB.Omit(clause.Associations).Save(&a).Error; err != nil {
		respondError(c, resourceAttrition, logging.OpUpdate, err)
		return
	}

	a, err := loadAttrition(id)
	if err != nil {
		respondError(c, resourceAttrition, logging.OpUpdate, err)
		return
	}
	c.JSON(http.StatusAccepted, newAttritionRow(a.Division.Name, &a))
}

func DeleteAttrition(c *gin.Context) {
	deleteRow[models.YearlyAttrition](c, resourceAttrition)
}
