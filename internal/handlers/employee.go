package handlers

import (
	"net/http"
	"time"

	"ia-admin/internal/database"
	"ia-admin/internal/logging"
	"ia-admin/internal/lookup"
	"ia-admin/internal/models"
	"ia-admin/internal/report"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const resourceEmployee = "employee"

type employeeRow struct {
	ID                       string `json:"id"`
	StaffNIK                 string `json:"staffNIK"`
	StaffName                string `json:"staffName"`
	Email                    string `json:"email"`
	Role                     string `json:"role"`
	Division                 string `json:"divison"`
	Stream                   string `json:"stream"`
	CorporateTitle           string `json:"corporateTitle"`
	CorporateGrade           string `json:"corporateGrade"`
	DateOfBirth              string `json:"dateOfBirth"`
	DateStartFirstEmployment string `json:"dateStartFirstEmployment"`
	DateJoinUOB              string `json:"dateJoinUOB"`
	DateJoinIAFunction       string `json:"dateJoinIAFunction"`
	AsOfNow                  string `json:"asOfNow"`
	Age                      int    `json:"age"`
	Gen                      string `json:"gen"`
	Gender                   string `json:"gender"`
	AuditUOBExp              int    `json:"auditUOBExp"`
	AuditNonUOBExp           int    `json:"auditNonUOBExp"`
	TotalAuditExp            int    `json:"totalAuditExp"`
	EducationLevel           string `json:"educationLevel"`
	EducationMajor           string `json:"educationMajor"`
	EducationCategory        string `json:"educationCategory"`

	RMGCertification string `json:"RMGCertification"`
	CISA             int    `json:"CISA"`
	CEH              int    `json:"CEH"`
	ISO              int    `json:"ISO"`
	CHFI             int    `json:"CHFI"`
	IDEA             int    `json:"IDEA"`
	QualifiedIA      int    `json:"QualifiedIA"`
	CBIA             int    `json:"CBIA"`
	CIA              int    `json:"CIA"`
	CPA              int    `json:"CPA"`
	CA               int    `json:"CA"`
	Others           int    `json:"Others"`

	IABackground bool `json:"IABackgground"`
	EABackground bool `json:"EABackground"`
	Active       bool `json:"active"`
}

func newEmployeeRow(e models.Employee) employeeRow {
	names := make([]string, 0, len(e.Certifications))
	for _, cert := range e.Certifications {
		names = append(names, cert.Name)
	}
	certs := report.SummarizeCertifications(names)

	now := report.Now()
	auditUOB := report.YearsSince(e.DateFirstUOB)

	return employeeRow{
		ID:                       idString(e.ID),
		StaffNIK:                 e.StaffID,
		StaffName:                e.Name,
		Email:                    e.Email,
		Role:                     e.Role.Name,
		Division:                 e.Division.Name,
		Stream:                   e.DivStream,
		CorporateTitle:           e.CorporateTitle,
		CorporateGrade:           e.CorporateGrade,
		DateOfBirth:              report.FormatDate(e.DateOfBirth),
		DateStartFirstEmployment: report.FormatDate(e.DateFirstEmployment),
		DateJoinUOB:              report.FormatDate(e.DateFirstUOB),
		DateJoinIAFunction:       report.FormatDate(e.DateFirstIA),
		AsOfNow:                  report.FormatDate(&now),
		Age:                      report.YearsSince(e.DateOfBirth),
		Gen:                      report.Generation(e.DateOfBirth),
		Gender:                   e.Gender,
		AuditUOBExp:              auditUOB,
		AuditNonUOBExp:           e.YearAuditNonUOB,
		TotalAuditExp:            e.YearAuditNonUOB + auditUOB,
		EducationLevel:           e.EduLevel,
		EducationMajor:           e.EduMajor,
		EducationCategory:        e.EduCategory,

		RMGCertification: certs.RMGCertification(),
		CISA:             certs.Flags["CISA"],
		CEH:              certs.Flags["CEH"],
		ISO:              certs.Flags["ISO"],
		CHFI:             certs.Flags["CHFI"],
		IDEA:             certs.Flags["IDEA"],
		QualifiedIA:      certs.Flags["QualifiedIA"],
		CBIA:             certs.Flags["CBIA"],
		CIA:              certs.Flags["CIA"],
		CPA:              certs.Flags["CPA"],
		CA:               certs.Flags["CA"],
		Others:           certs.Others,

		IABackground: e.IABackground,
		EABackground: e.EABackground,
		Active:       e.Active,
	}
}

type employeeInput struct {
	StaffNIK                 *string   `json:"staffNIK"`
	StaffName                *string   `json:"staffName"`
	Email                    *string   `json:"email"`
	Role                     *string   `json:"role"`
	Division                 *string   `json:"divison"`
	Stream                   *string   `json:"stream"`
	CorporateTitle           *string   `json:"corporateTitle"`
	CorporateGrade           *string   `json:"corporateGrade"`
	DateOfBirth              *string   `json:"dateOfBirth"`
	DateStartFirstEmployment *string   `json:"dateStartFirstEmployment"`
	DateJoinUOB              *string   `json:"dateJoinUOB"`
	DateJoinIAFunction       *string   `json:"dateJoinIAFunction"`
	Gender                   *string   `json:"gender"`
	AuditNonUOBExp           *int      `json:"auditNonUOBExp"`
	EducationLevel           *string   `json:"educationLevel"`
	EducationMajor           *string   `json:"educationMajor"`
	EducationCategory        *string   `json:"educationCategory"`
	IABackground             *bool     `json:"IABackgground"`
	EABackground             *bool     `json:"EABackground"`
	Active                   *bool     `json:"active"`
	Certifications           *[]string `json:"certifications"`
}

func setDate(dst **time.Time, field string, src *string) error {
	if src == nil {
		return nil
	}
	if *src == "" {
		*dst = nil
		return nil
	}
	d, err := parseDate(field, *src)
	if err != nil {
		return err
	}
	*dst = &d
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func (in employeeInput) applyTo(db *gorm.DB, e *models.Employee) error {
	if in.Division != nil {
		id, err := lookup.DivisionID(db, *in.Division)
		if err != nil {
			return err
		}
		e.DivisionID = id
	}
	if in.Role != nil {
		id, err := lookup.RoleID(db, *in.Role)
		if err != nil {
			return err
		}
		e.RoleID = id
	}

	dates := []struct {
		dst   **time.Time
		field string
		src   *string
	}{
		{&e.DateOfBirth, "dateOfBirth", in.DateOfBirth},
		{&e.DateFirstEmployment, "dateStartFirstEmployment", in.DateStartFirstEmployment},
		{&e.DateFirstUOB, "dateJoinUOB", in.DateJoinUOB},
		{&e.DateFirstIA, "dateJoinIAFunction", in.DateJoinIAFunction},
	}
	for _, d := range dates {
		if err := setDate(d.dst, d.field, d.src); err != nil {
			return err
		}
	}

	setString(&e.StaffID, in.StaffNIK)
	setString(&e.Name, in.StaffName)
	setString(&e.Email, in.Email)
	setString(&e.DivStream, in.Stream)
	setString(&e.CorporateTitle, in.CorporateTitle)
	setString(&e.CorporateGrade, in.CorporateGrade)
	setString(&e.Gender, in.Gender)
	setString(&e.EduLevel, in.EducationLevel)
	setString(&e.EduMajor, in.EducationMajor)
	setString(&e.EduCategory, in.EducationCategory)

	if in.AuditNonUOBExp != nil {
		e.YearAuditNonUOB = *in.AuditNonUOBExp
	}
	if in.IABackground != nil {
		e.IABackground = *in.IABackground
	}
	if in.EABackground != nil {
		e.EABackground = *in.EABackground
	}
	if in.Active != nil {
		e.Active = *in.Active
	}
	return nil
}

// ensureUniqueNIK rejects a staff id already held by another employee.
func ensureUniqueNIK(db *gorm.DB, e models.Employee) error {
	var count int64
	if err := db.Model(&models.Employee{}).
		Where("staff_id = ? AND id <> ?", e.StaffID, e.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &httpError{Status: http.StatusConflict, Detail: "Employee with NIK " + e.StaffID + " already exists"}
	}
	return nil
}

// replaceCertifications swaps the stored certification set of an employee.
func replaceCertifications(tx *gorm.DB, employeeID uint, names []string) error {
	if err := tx.Where("employee_id = ?", employeeID).Delete(&models.Certification{}).Error; err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}
	certs := make([]models.Certification, 0, len(names))
	for _, name := range names {
		certs = append(certs, models.Certification{Name: name, EmployeeID: employeeID})
	}
	return tx.Create(&certs).Error
}

func loadEmployee(id uint) (models.Employee, error) {
	var e models.Employee
	err := database.DB.Preload("Division").Preload("Role").
		Preload("Certifications", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		First(&e, id).Error
	return e, err
}

func ListEmployees(c *gin.Context) {
	var employees []models.Employee
	if err := database.DB.Preload("Division").Preload("Role").
		Preload("Certifications", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Order("id asc").
		Find(&employees).Error; err != nil {
		respondError(c, resourceEmployee, logging.OpList, err)
		return
	}

	rows := make([]employeeRow, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, newEmployeeRow(e))
	}
	c.JSON(http.StatusOK, rows)
}

func CreateEmployee(c *gin.Context) {
	var in employeeInput
	if !bindJSON(c, &in) {
		return
	}

	if err := requireFields(
		need("staffNIK", in.StaffNIK != nil),
		need("staffName", in.StaffName != nil),
		need("divison", in.Division != nil),
		need("role", in.Role != nil),
	); err != nil {
		respondError(c, resourceEmployee, logging.OpCreate, err)
		return
	}

	e := models.Employee{PasswordHash: string(defaultPasswordHash)}
	if err := in.applyTo(database.DB, &e); err != nil {
		respondError(c, resourceEmployee, logging.OpCreate, err)
		return
	}

	if err := ensureUniqueNIK(database.DB, e); err != nil {
		respondError(c, resourceEmployee, logging.OpCreate, err)
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&e).Error; err != nil {
			return err
		}
		if in.Certifications != nil {
			return replaceCertifications(tx, e.ID, *in.Certifications)
		}
		return nil
	})
	if err != nil {
		respondError(c, resourceEmployee, logging.OpCreate, err)
		return
	}

	e, err = loadEmployee(e.ID)
	if err != nil {
		respondError(c, resourceEmployee, logging.OpCreate, err)
		return
	}
	c.JSON(http.StatusCreated, newEmployeeRow(e))
}

func UpdateEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var e models.Employee
	if err := database.DB.First(&e, id).Error; err != nil {
		respondError(c, resourceEmployee, logging.OpUpdate, err)
		return
	}

	var in employeeInput
	if !bindJSON(c, &in) {
		return
	}

	if err := in.applyTo(database.DB, &e); err != nil {
		respondError(c, resourceEmployee, logging.OpUpdate, err)
		return
	}

	if err := ensureUniqueNIK(database.DB, e); err != nil {
		respondError(c, resourceEmployee, logging.OpUpdate, err)
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&e).Error; err != nil {
			return err
		}
		if in.Certifications != nil {
			return replaceCertifications(tx, e.ID, *in.Certifications)
		}
		return nil
	})
	if err != nil {
		respondError(c, resourceEmployee, logging.OpUpdate, err)
		return
	}

	e, err = loadEmployee(id)
	if err != nil {
		respondError(c, resourceEmployee, logging.OpUpdate, err)
		return
	}
	c.JSON(http.StatusAccepted, newEmployeeRow(e))
}

func DeleteEmployee(c *gin.Context) {
	deleteRow[models.Employee](c, resourceEmployee)
}
