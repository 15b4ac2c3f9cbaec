package server

import (
	"net/http"

	"ia-admin/internal/config"
	"ia-admin/internal/handlers"
	"ia-admin/internal/logging"
	"ia-admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

// tableRoutes registers the usual list/create/update/delete quartet of an
// admin table. list and create may be nil when the table has its own shape.
func tableRoutes(g *gin.RouterGroup, list, create, update, del gin.HandlerFunc) {
	if list != nil {
		g.GET("/:year", list)
	}
	if create != nil {
		g.POST("", create)
	}
	g.PATCH("/:id", update)
	g.DELETE("/:id", del)
}

func NewRouter(cfg *config.Config, lg *logging.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(lg))
	r.Use(middleware.Recovery(lg))

	admin := r.Group("/admin")

	// QAIP
	tableRoutes(admin.Group("/qaip_data/api/table_data"),
		handlers.ListQAIP, handlers.CreateQAIP, handlers.UpdateQAIP, handlers.DeleteQAIP)

	// BUDGET
	budget := admin.Group("/budget_data/api/table_data")
	budget.GET("/:year/:month", handlers.GetBudget)
	budget.PATCH("/:year/:month", handlers.UpdateBudget)

	// CSF
	tableRoutes(admin.Group("/csf_data/api/table_data"),
		handlers.ListCSF, handlers.CreateCSF, handlers.UpdateCSF, handlers.DeleteCSF)

	// EMPLOYEES
	employees := admin.Group("/employee_data/api/table_data")
	employees.GET("", handlers.ListEmployees)
	tableRoutes(employees, nil, handlers.CreateEmployee, handlers.UpdateEmployee, handlers.DeleteEmployee)

	// TRAINING
	tableRoutes(admin.Group("/training_data/api/table_data"),
		handlers.ListTrainings, handlers.CreateTraining, handlers.UpdateTraining, handlers.DeleteTraining)

	// AUDIT PROJECTS
	tableRoutes(admin.Group("/audit_project_data/api/table_data"),
		handlers.ListProjects, handlers.CreateProject, handlers.UpdateProject, handlers.DeleteProject)
	admin.GET("/api/title_project/:year", handlers.ListProjectTitles)

	// SOCIAL CONTRIBUTION
	tableRoutes(admin.Group("/audit_contribution_data/api/table_data"),
		handlers.ListContributions, handlers.CreateContribution, handlers.UpdateContribution, handlers.DeleteContribution)

	// BUSU
	tableRoutes(admin.Group("/busu_data/api/table_data"),
		handlers.ListBUSU, handlers.CreateBUSU, handlers.UpdateBUSU, handlers.DeleteBUSU)

	// ATTRITION, created per year
	attrition := admin.Group("/attrition_data/api/table_data")
	attrition.POST("/:year", handlers.CreateAttrition)
	tableRoutes(attrition, handlers.ListAttrition, nil, handlers.UpdateAttrition, handlers.DeleteAttrition)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
