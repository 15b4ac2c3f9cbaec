package handlers

import (
	"net/http"
	"strconv"
	"time"

	"ia-admin/internal/report"

	"github.com/gin-gonic/gin"
)

// pathInt reads an integer path parameter, answering 422 when it is not one.
func pathInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		abortDetail(c, http.StatusUnprocessableEntity, name+" must be an integer")
		return 0, false
	}
	return v, true
}

func pathID(c *gin.Context) (uint, bool) {
	id, ok := pathInt(c, "id")
	if !ok {
		return 0, false
	}
	if id <= 0 {
		abortDetail(c, http.StatusNotFound, "ID not found")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortDetail(c, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

type requiredField struct {
	name    string
	present bool
}

func need(name string, present bool) requiredField {
	return requiredField{name: name, present: present}
}

// requireFields fails on the first missing field, in argument order.
func requireFields(fields ...requiredField) error {
	for _, f := range fields {
		if !f.present {
			return unprocessable(f.name + " is required")
		}
	}
	return nil
}

func parseDate(field, s string) (time.Time, error) {
	t, err := report.ParseDate(s)
	if err != nil {
		return time.Time{}, unprocessable("Invalid " + field + " (" + s + "): expected MM/DD/YYYY")
	}
	return t, nil
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
