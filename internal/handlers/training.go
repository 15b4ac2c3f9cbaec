package handlers

import (
	"errors"
	"net/http"

	"ia-admin/internal/database"
	"ia-admin/internal/logging"
	"ia-admin/internal/models"
	"ia-admin/internal/report"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const resourceTraining = "training"

type trainingRow struct {
	ID               string  `json:"id"`
	Division         string  `json:"division"`
	Name             string  `json:"name"`
	NIK              string  `json:"nik"`
	TrainingTitle    string  `json:"trainingTitle"`
	Date             string  `json:"date"`
	NumberOfHours    float64 `json:"numberOfHours"`
	Budget           float64 `json:"budget"`
	CostRealization  float64 `json:"costRealization"`
	ChargedByFinance float64 `json:"chargedByFinance"`
	MandatoryFrom    string  `json:"mandatoryFrom"`
	Remark           string  `json:"remark"`
}

func newTrainingRow(t models.Training) trainingRow {
	row := trainingRow{
		ID:               idString(t.ID),
		TrainingTitle:    t.Name,
		Date:             report.FormatDate(&t.Date),
		NumberOfHours:    t.DurationHours,
		Budget:           t.Budget,
		CostRealization:  t.Realization,
		ChargedByFinance: t.ChargedByFin,
		MandatoryFrom:    t.MandatoryFrom,
		Remark:           t.Remark,
	}
	if t.Employee != nil {
		row.Division = t.Employee.Division.Name
		row.Name = t.Employee.Name
		row.NIK = t.Employee.StaffID
	}
	return row
}

type trainingInput struct {
	NIK              *string  `json:"nik"`
	TrainingTitle    *string  `json:"trainingTitle"`
	Date             *string  `json:"date"`
	NumberOfHours    *float64 `json:"numberOfHours"`
	Budget           *float64 `json:"budget"`
	CostRealization  *float64 `json:"costRealization"`
	ChargedByFinance *float64 `json:"chargedByFinance"`
	MandatoryFrom    *string  `json:"mandatoryFrom"`
	Remark           *string  `json:"remark"`
}

// employeeIDByNIK finds the employee holding the given staff id.
func employeeIDByNIK(db *gorm.DB, nik string) (uint, error) {
	var e models.Employee
	err := db.Select("id").Where("staff_id = ?", nik).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, notFound("Employee with NIK " + nik + " not found")
	}
	if err != nil {
		return 0, err
	}
	return e.ID, nil
}

func (in trainingInput) applyTo(db *gorm.DB, t *models.Training) error {
	if in.NIK != nil {
		id, err := employeeIDByNIK(db, *in.NIK)
		if err != nil {
			return err
		}
		t.EmployeeID = &id
	}
	if in.Date != nil {
		d, err := parseDate("date", *in.Date)
		if err != nil {
			return err
		}
		t.Date = d
	}
	if in.TrainingTitle != nil {
		t.Name = *in.TrainingTitle
	}
	if in.NumberOfHours != nil {
		t.DurationHours = *in.NumberOfHours
	}
	if in.Budget != nil {
		t.Budget = *in.Budget
	}
	if in.CostRealization != nil {
		t.Realization = *in.CostRealization
	}
	if in.ChargedByFinance != nil {
		t.ChargedByFin = *in.ChargedByFinance
	}
	if in.MandatoryFrom != nil {
		t.MandatoryFrom = *in.MandatoryFrom
	}
	if in.Remark != nil {
		t.Remark = *in.Remark
	}
	return nil
}

func loadTraining(id uint) (models.Training, error) {
	var t models.Training
	err := database.DB.Preload("Employee.Division").First(&t, id).Error
	return t, err
}

func ListTrainings(c *gin.Context) {
	year, ok := pathInt(c, "year")
	if !ok {
		return
	}
	start, end := report.YearRange(year)

	var trainings []models.Training
	if err := database.DB.Preload("Employee.Division").
		Where("date >= ? AND date < ?", start, end).
		Order("id asc").
		Find(&trainings).Error; err != nil {
		respondError(c, resourceTraining, logging.OpList, err)
		return
	}

	rows := make([]trainingRow, 0, len(trainings))
	for _, t := range trainings {
		rows = append(rows, newTrainingRow(t))
	}
	c.JSON(http.StatusOK, rows)
}

func CreateTraining(c *gin.Context) {
	var in trainingInput
	if !bindJSON(c, &in) {
		return
	}

	if err := requireFields(
		need("nik", in.NIK != nil),
		need("trainingTitle", in.TrainingTitle != nil),
		need("date", in.Date != nil),
	); err != nil {
		respondError(c, resourceTraining, logging.OpCreate, err)
		return
	}

	var t models.Training
	if err := in.applyTo(database.DB, &t); err != nil {
		respondError(c, resourceTraining, logging.OpCreate, err)
		return
	}

	if err := database.DB.Omit(clause.Associations).Create(&t).Error; err != nil {
		respondError(c, resourceTraining, logging.OpCreate, err)
		return
	}

	t, err := loadTraining(t.ID)
	if err != nil {
		respondError(c, resourceTraining, logging.OpCreate, err)
		return
	}
	c.JSON(http.StatusCreated, newTrainingRow(t))
}

func UpdateTraining(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var t models.Training
	if err := database.DB.First(&t, id).Error; err != nil {
		respondError(c, resourceTraining, logging.OpUpdate, err)
		return
	}

	var in trainingInput
	if !bindJSON(c, &in) {
		return
	}

	if err := in.applyTo(database.DB, &t); err != nil {
		respondError(c, resourceTraining, logging.OpUpdate, err)
		return
	}

	if err := database.DB.Omit(clause.Associations).Save(&t).Error; err != nil {
		respondError(c, resourceTraining, logging.OpUpdate, err)
		return
	}

	t, err := loadTraining(id)
	if err != nil {
		respondError(c, resourceTraining, logging.OpUpdate, err)
		return
	}
	c.JSON(http.StatusAccepted, newTrainingRow(t))
}

func DeleteTraining(c *gin.Context) {
	deleteRow[models.Training](c, resourceTraining)
}
