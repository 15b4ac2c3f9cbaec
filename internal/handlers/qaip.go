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

const resourceQAIP = "qaip"

type qaipRow struct {
	ID           string `json:"id"`
	QAType       string `json:"QAType"`
	AuditProject string `json:"auditProject"`
	TL           string `json:"TL"`
	DivisionHead string `json:"divisionHead"`
	Result       string `json:"result"`
	Category     string `json:"category"`
	Stage        string `json:"stage"`
	Deliverable  string `json:"deliverable"`
	NoOfIssues   int    `json:"noOfIssues"`
	QASample     bool   `json:"QASample"`
}

func newQAIPRow(q models.QAIP) qaipRow {
	deliverables := report.QADeliverables(q.QAChecklist)
	return qaipRow{
		ID:           idString(q.ID),
		QAType:       q.QAType.Name,
		AuditProject: q.Project.Name,
		TL:           employeeName(q.TL),
		DivisionHead: q.DivisionHead,
		Result:       q.QAGradingResult.Name,
		Category:     report.JoinLabels(report.QACategories(q.QAChecklist)),
		Stage:        report.JoinLabels(report.QAStages(q.QAChecklist)),
		Deliverable:  report.JoinLabels(deliverables),
		NoOfIssues:   len(deliverables),
		QASample:     q.QASample,
	}
}

type qaipInput struct {
	QAType       *string `json:"QAType"`
	AuditProject *string `json:"auditProject"`
	TL           *string `json:"TL"`
	DivisionHead *string `json:"divisionHead"`
	Result       *string `json:"result"`
	Category     *string `json:"category"`
	Stage        *string `json:"stage"`
	Deliverable  *string `json:"deliverable"`
	QASample     *bool   `json:"QASample"`
}

func (in qaipInput) applyTo(db *gorm.DB, q *models.QAIP) error {
	if in.QAType != nil {
		id, err := lookup.QATypeID(db, *in.QAType)
		if err != nil {
			return err
		}
		q.QATypeID = id
	}
	if in.Result != nil {
		id, err := lookup.QAGradingResultID(db, *in.Result)
		if err != nil {
			return err
		}
		q.QAGradingResultID = id
	}
	if in.AuditProject != nil {
		id, err := projectRef(db, *in.AuditProject)
		if err != nil {
			return err
		}
		q.ProjectID = id
	}
	if in.TL != nil {
		id, err := teamLeaderRef(db, *in.TL)
		if err != nil {
			return err
		}
		q.TLID = id
	}

	// Work on a copy so a bad label leaves q untouched.
	checklist := q.QAChecklist
	if in.Category != nil {
		if err := report.SetQACategories(&checklist, *in.Category); err != nil {
			return err
		}
	}
	if in.Stage != nil {
		if err := report.SetQAStages(&checklist, *in.Stage); err != nil {
			return err
		}
	}
	if in.Deliverable != nil {
		if err := report.SetQADeliverables(&checklist, *in.Deliverable); err != nil {
			return err
		}
	}
	q.QAChecklist = checklist
	q.IssueCount = len(report.QADeliverables(checklist))

	setString(&q.DivisionHead, in.DivisionHead)
	if in.QASample != nil {
		q.QASample = *in.QASample
	}
	return nil
}

func qaipQuery() *gorm.DB {
	return database.DB.Preload("QAType").Preload("Project").Preload("TL").Preload("QAGradingResult")
}

func loadQAIP(id uint) (models.QAIP, error) {
	var q models.QAIP
	err := qaipQuery().First(&q, id).Error
	return q, err
}

// ListQAIP returns the QA reviews of projects planned for the year.
func ListQAIP(c *gin.Context) {
	year, ok := pathInt(c, "year")
	if !ok {
		return
	}

	projects := database.DB.Model(&models.Project{}).Select("id").Where("year = ?", year)

	var reviews []models.QAIP
	if err := qaipQuery().
		Where("project_id IN (?)", projects).
		Order("id asc").
		Find(&reviews).Error; err != nil {
		respondError(c, resourceQAIP, logging.OpList, err)
		return
	}

	rows := make([]qaipRow, 0, len(reviews))
	for _, q := range reviews {
		rows = append(rows, newQAIPRow(q))
	}
	c.JSON(http.StatusOK, rows)
}

func CreateQAIP(c *gin.Context) {
	var in qaipInput
	if !bindJSON(c, &in) {
		return
	}

	if err := requireFields(
		need("QAType", in.QAType != nil),
		need("result", in.Result != nil),
	); err != nil {
		respondError(c, resourceQAIP, logging.OpCreate, err)
		return
	}
	if in.AuditProject == nil {
		abortDetail(c, http.StatusNotFound, "Audit Project must be an ID")
		return
	}

	var q models.QAIP
	if err := in.applyTo(database.DB, &q); err != nil {
		respondError(c, resourceQAIP, logging.OpCreate, err)
		return
	}

	if err := database.DB.Omit(clause.Associations).Create(&q).Error; err != nil {
		respondError(c, resourceQAIP, logging.OpCreate, err)
		return
	}

	q, err := loadQAIP(q.ID)
	if err != nil {
		respondError(c, resourceQAIP, logging.OpCreate, err)
		return
	}
	c.JSON(http.StatusCreated, newQAIPRow(q))
}

func UpdateQAIP(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var q models.QAIP
	if err := database.DB.First(&q, id).Error; err != nil {
		respondError(c, resourceQAIP, logging.OpUpdate, err)
		return
	}

	var in qaipInput
	if !bindJSON(c, &in) {
		return
	}

	if err := in.applyTo(database.DB, &q); err != nil {
		respondError(c, resourceQAIP, logging.OpUpdate, err)
		return
	}

	if err := database.DB.Omit(clause.Associations).Save(&q).Error; err != nil {
		respondError(c, resourceQAIP, logging.OpUpdate, err)
		return
	}

	q, err := loadQAIP(id)
	if err != nil {
		respondError(c, resourceQAIP, logging.OpUpdate, err)
		return
	}
	c.JSON(http.StatusAccepted, newQAIPRow(q))
}

func DeleteQAIP(c *gin.Context) {
	deleteRow[models.QAIP](c, resourceQAIP)
}
