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

const resourceCSF = "csf"

type csfRow struct {
	ID              string  `json:"id"`
	DivisionProject string  `json:"division_project"`
	AuditProject    string  `json:"auditProject"`
	ClientName      string  `json:"clientName"`
	UnitJabatan     string  `json:"unitJabatan"`
	TL              string  `json:"TL"`
	CSFDate         string  `json:"CSFDate"`
	ATP1            float64 `json:"atp1"`
	ATP2            float64 `json:"atp2"`
	ATP3            float64 `json:"atp3"`
	ATP4            float64 `json:"atp4"`
	ATP5            float64 `json:"atp5"`
	ATP6            float64 `json:"atp6"`
	ATPOverall      float64 `json:"atpOverall"`
	AC1             float64 `json:"ac1"`
	AC2             float64 `json:"ac2"`
	AC3             float64 `json:"ac3"`
	AC4             float64 `json:"ac4"`
	AC5             float64 `json:"ac5"`
	AC6             float64 `json:"ac6"`
	ACOverall       float64 `json:"acOverall"`
	PAW1            float64 `json:"paw1"`
	PAW2            float64 `json:"paw2"`
	PAW3            float64 `json:"paw3"`
	PAWOverall      float64 `json:"pawOverall"`
	Overall         float64 `json:"overall"`
	DivisionByInv   string  `json:"division_by_inv"`
}

func newCSFRow(c models.CSF) csfRow {
	avg := report.AverageCSF(c.CSFScores)
	return csfRow{
		ID:              idString(c.ID),
		DivisionProject: c.Project.Division.Name,
		AuditProject:    idString(c.ProjectID),
		ClientName:      c.ClientName,
		UnitJabatan:     c.ClientUnit,
		TL:              employeeName(c.TL),
		CSFDate:         report.FormatDate(c.CSFDate),
		ATP1:            c.ATP1,
		ATP2:            c.ATP2,
		ATP3:            c.ATP3,
		ATP4:            c.ATP4,
		ATP5:            c.ATP5,
		ATP6:            c.ATP6,
		ATPOverall:      avg.ATP,
		AC1:             c.AC1,
		AC2:             c.AC2,
		AC3:             c.AC3,
		AC4:             c.AC4,
		AC5:             c.AC5,
		AC6:             c.AC6,
		ACOverall:       avg.AC,
		PAW1:            c.PAW1,
		PAW2:            c.PAW2,
		PAW3:            c.PAW3,
		PAWOverall:      avg.PAW,
		Overall:         avg.Overall,
		DivisionByInv:   c.ByInvDivision.Name,
	}
}

type csfInput struct {
	DivisionByInv *string  `json:"division_by_inv"`
	AuditProject  *string  `json:"auditProject"`
	TL            *string  `json:"TL"`
	ClientName    *string  `json:"clientName"`
	UnitJabatan   *string  `json:"unitJabatan"`
	CSFDate       *string  `json:"CSFDate"`
	ATP1          *float64 `json:"atp1"`
	ATP2          *float64 `json:"atp2"`
	ATP3          *float64 `json:"atp3"`
	ATP4          *float64 `json:"atp4"`
	ATP5          *float64 `json:"atp5"`
	ATP6          *float64 `json:"atp6"`
	AC1           *float64 `json:"ac1"`
	AC2           *float64 `json:"ac2"`
	AC3           *float64 `json:"ac3"`
	AC4           *float64 `json:"ac4"`
	AC5           *float64 `json:"ac5"`
	AC6           *float64 `json:"ac6"`
	PAW1          *float64 `json:"paw1"`
	PAW2          *float64 `json:"paw2"`
	PAW3          *float64 `json:"paw3"`
}

func (in csfInput) applyTo(db *gorm.DB, c *models.CSF) error {
	if in.DivisionByInv != nil {
		id, err := lookup.DivisionID(db, *in.DivisionByInv)
		if lookup.IsUnknownName(err) {
			return notFound("Div Name not found")
		}
		if err != nil {
			return err
		}
		c.ByInvDivisionID = id
	}
	if in.AuditProject != nil {
		id, err := projectRef(db, *in.AuditProject)
		if err != nil {
			return err
		}
		c.ProjectID = id
	}
	if in.TL != nil {
		id, err := teamLeaderRef(db, *in.TL)
		if err != nil {
			return err
		}
		c.TLID = id
	}
	if err := setDate(&c.CSFDate, "CSFDate", in.CSFDate); err != nil {
		return err
	}
	setString(&c.ClientName, in.ClientName)
	setString(&c.ClientUnit, in.UnitJabatan)

	scores := []struct {
		dst *float64
		src *float64
	}{
		{&c.ATP1, in.ATP1}, {&c.ATP2, in.ATP2}, {&c.ATP3, in.ATP3},
		{&c.ATP4, in.ATP4}, {&c.ATP5, in.ATP5}, {&c.ATP6, in.ATP6},
		{&c.AC1, in.AC1}, {&c.AC2, in.AC2}, {&c.AC3, in.AC3},
		{&c.AC4, in.AC4}, {&c.AC5, in.AC5}, {&c.AC6, in.AC6},
		{&c.PAW1, in.PAW1}, {&c.PAW2, in.PAW2}, {&c.PAW3, in.PAW3},
	}
	for _, s := range scores {
		if s.src != nil {
			*s.dst = *s.src
		}
	}
	return nil
}

func csfQuery() *gorm.DB {
	return database.DB.Preload("Project.Division").Preload("TL").Preload("ByInvDivision")
}

func loadCSF(id uint) (models.CSF, error) {
	var c models.CSF
	err := csfQuery().First(&c, id).Error
	return c, err
}

// ListCSF returns the feedback forms of projects planned for the year.
func ListCSF(c *gin.Context) {
	year, ok := pathInt(c, "year")
	if !ok {
		return
	}

	projects := database.DB.Model(&models.Project{}).Select("id").Where("year = ?", year)

	var csfs []models.CSF
	if err := csfQuery().
		Where("project_id IN (?)", projects).
		Order("id asc").
		Find(&csfs).Error; err != nil {
		respondError(c, resourceCSF, logging.OpList, err)
		return
	}

	rows := make([]csfRow, 0, len(csfs))
	for _, f := range csfs {
		rows = append(rows, newCSFRow(f))
	}
	c.JSON(http.StatusOK, rows)
}

func CreateCSF(c *gin.Context) {
	var in csfInput
	if !bindJSON(c, &in) {
		return
	}

	if in.DivisionByInv == nil {
		abortDetail(c, http.StatusNotFound, "Div Name not found")
		return
	}
	if in.AuditProject == nil {
		abortDetail(c, http.StatusNotFound, "Audit Project must be an ID")
		return
	}

	var f models.CSF
	if err := in.applyTo(database.DB, &f); err != nil {
		respondError(c, resourceCSF, logging.OpCreate, err)
		return
	}

	if err := database.DB.Omit(clause.Associations).Create(&f).Error; err != nil {
		respondError(c, resourceCSF, logging.OpCreate, err)
		return
	}

	f, err := loadCSF(f.ID)
	if err != nil {
		respondError(c, resourceCSF, logging.OpCreate, err)
		return
	}
	c.JSON(http.StatusCreated, newCSFRow(f))
}

func UpdateCSF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var f models.CSF
	if err := database.DB.First(&f, id).Error; err != nil {
		respondError(c, resourceCSF, logging.OpUpdate, err)
		return
	}

	var in csfInput
	if !bindJSON(c, &in) {
		return
	}

	if err := in.applyTo(database.DB, &f); err != nil {
		respondError(c, resourceCSF, logging.OpUpdate, err)
		return
	}

	if err := database.DB.Omit(clause.Associations).Save(&f).Error; err != nil {
		respondError(c, resourceCSF, logging.OpUpdate, err)
		return
	}

	f, err := loadCSF(id)
	if err != nil {
		respondError(c, resourceCSF, logging.OpUpdate, err)
		return
	}
	c.JSON(http.StatusAccepted, newCSFRow(f))
}

func DeleteCSF(c *gin.Context) {
	deleteRow[models.CSF](c, resourceCSF)
}
