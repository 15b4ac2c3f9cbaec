package handlers

import (
	"net/http"

	"ia-admin/internal/database"
	"ia-admin/internal/logging"
	"ia-admin/internal/lookup"
	"ia-admin/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const resourceProject = "audit_project"

type projectRow struct {
	ID            string `json:"id"`
	AuditPlan     string `json:"auditPlan"`
	Division      string `json:"division"`
	Status        string `json:"status"`
	UseOfDA       bool   `json:"useOfDA"`
	Year          int    `json:"year"`
	IsCarriedOver bool   `json:"is_carried_over"`
	TimelyReport  bool   `json:"timely_report"`
	CompletionPA  bool   `json:"completion_PA"`
}

func newProjectRow(p models.Project) projectRow {
	return projectRow{
		ID:            idString(p.ID),
		AuditPlan:     p.Name,
		Division:      p.Division.Name,
		Status:        p.Status.Name,
		UseOfDA:       p.UsedDA,
		Year:          p.Year,
		IsCarriedOver: p.IsCarriedOver,
		TimelyReport:  p.TimelyReport,
		CompletionPA:  p.CompletionPA,
	}
}

type projectInput struct {
	AuditPlan     *string `json:"auditPlan"`
	Division      *string `json:"division"`
	Status        *string `json:"status"`
	UseOfDA       *bool   `json:"useOfDA"`
	Year          *int    `json:"year"`
	IsCarriedOver *bool   `json:"is_carried_over"`
	TimelyReport  *bool   `json:"timely_report"`
	CompletionPA  *bool   `json:"completion_PA"`
}

// applyTo copies the supplied fields onto p.
func (in projectInput) applyTo(db *gorm.DB, p *models.Project) error {
	if in.Division != nil {
		id, err := lookup.DivisionID(db, *in.Division)
		if err != nil {
			return err
		}
		p.DivisionID = id
	}
	if in.Status != nil {
		id, err := lookup.ProjectStatusID(db, *in.Status)
		if err != nil {
			return err
		}
		p.StatusID = id
	}
	if in.AuditPlan != nil {
		p.Name = *in.AuditPlan
	}
	if in.UseOfDA != nil {
		p.UsedDA = *in.UseOfDA
	}
	if in.Year != nil {
		p.Year = *in.Year
	}
	if in.IsCarriedOver != nil {
		p.IsCarriedOver = *in.IsCarriedOver
	}
	if in.TimelyReport != nil {
		p.TimelyReport = *in.TimelyReport
	}
	if in.CompletionPA != nil {
		p.CompletionPA = *in.CompletionPA
	}
	return nil
}

func loadProject(id uint) (models.Project, error) {
	var p models.Project
	err := database.DB.Preload("Division").Preload("Status").First(&p, id).Error
	return p, err
}

func ListProjects(c *gin.Context) {
	year, ok := pathInt(c, "year")
	if !ok {
		return
	}

	var projects []models.Project
	if err := database.DB.Preload("Division").Preload("Status").
		Where("year = ?", year).
		Order("id asc").
		Find(&projects).Error; err != nil {
		respondError(c, resourceProject, logging.OpList, err)
		return
	}

	rows := make([]projectRow, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, newProjectRow(p))
	}
	c.JSON(http.StatusOK, rows)
}

func CreateProject(c *gin.Context) {
	var in projectInput
	if !bindJSON(c, &in) {
		return
	}

	if err := requireFields(
		need("auditPlan", in.AuditPlan != nil),
		need("division", in.Division != nil),
		need("status", in.Status != nil),
		need("year", in.Year != nil),
	); err != nil {
		respondError(c, resourceProject, logging.OpCreate, err)
		return
	}

	var p models.Project
	if err := in.applyTo(database.DB, &p); err != nil {
		respondError(c, resourceProject, logging.OpCreate, err)
		return
	}

	if err := database.DB.Omit(clause.Associations).Create(&p).Error; err != nil {
		respondError(c, resourceProject, logging.OpCreate, err)
		return
	}

	p, err := loadProject(p.ID)
	if err != nil {
		respondError(c, resourceProject, logging.OpCreate, err)
		return
	}
	c.JSON(http.StatusCreated, newProjectRow(p))
}

func UpdateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var p models.Project
	if err := database.DB.First(&p, id).Error; err != nil {
		respondError(c, resourceProject, logging.OpUpdate, err)
		return
	}

	var in projectInput
	if !bindJSON(c, &in) {
		return
	}

	if err := in.applyTo(database.DB, &p); err != nil {
		respondError(c, resourceProject, logging.OpUpdate, err)
		return
	}

	if err := database.DB.Omit(clause.Associations).Save(&p).Error; err != nil {
		respondError(c, resourceProject, logging.OpUpdate, err)
		return
	}

	p, err := loadProject(id)
	if err != nil {
		respondError(c, resourceProject, logging.OpUpdate, err)
		return
	}
	c.JSON(http.StatusAccepted, newProjectRow(p))
}

func DeleteProject(c *gin.Context) {
	deleteRow[models.Project](c, resourceProject)
}

type projectTitle struct {
	ID           string `json:"id"`
	ProjectTitle string `json:"project_title"`
}

// ListProjectTitles feeds the project pickers of the QA and CSF forms.
func ListProjectTitles(c *gin.Context) {
	year, ok := pathInt(c, "year")
	if !ok {
		return
	}

	var projects []models.Project
	if err := database.DB.Where("year = ?", year).Order("id asc").Find(&projects).Error; err != nil {
		respondError(c, resourceProject, logging.OpList, err)
		return
	}

	titles := make([]projectTitle, 0, len(projects))
	for _, p := range projects {
		titles = append(titles, projectTitle{ID: idString(p.ID), ProjectTitle: p.Name})
	}
	c.JSON(http.StatusOK, titles)
}
