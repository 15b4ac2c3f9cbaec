package handlers

import (
	"errors"
	"net/http"

	"ia-admin/internal/logging"
	"ia-admin/internal/lookup"
	"ia-admin/internal/middleware"
	"ia-admin/internal/report"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// httpError is an expected failure with its response status and detail.
type httpError struct {
	Status int
	Detail string
}

func (e *httpError) Error() string { return e.Detail }

func notFound(detail string) error { return &httpError{Status: http.StatusNotFound, Detail: detail} }
func unprocessable(detail string) error {
	return &httpError{Status: http.StatusUnprocessableEntity, Detail: detail}
}

func abortDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

// respondError maps err onto a status code. Unexpected errors are logged
// and answered with a generic 500.
func respondError(c *gin.Context, resource, op string, err error) {
	_ = c.Error(err)

	var (
		he  *httpError
		ce  *report.CategoryError
		cle *report.ChecklistError
	)
	switch {
	case errors.As(err, &he):
		abortDetail(c, he.Status, he.Detail)
	case lookup.IsUnknownName(err):
		abortDetail(c, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &ce):
		abortDetail(c, http.StatusUnprocessableEntity, ce.Error())
	case errors.As(err, &cle):
		abortDetail(c, http.StatusUnprocessableEntity, cle.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		abortDetail(c, http.StatusNotFound, "ID not found")
	default:
		lg.Error("request failed",
			logging.FieldRequestID, middleware.GetRequestID(c),
			logging.FieldResource, resource,
			logging.FieldOperation, op,
			logging.FieldError, err,
		)
		abortDetail(c, http.StatusInternalServerError, "Internal server error")
	}
}
