package handlers

import (
	"net/http"

	"ia-admin/internal/database"
	"ia-admin/internal/logging"

	"github.com/gin-gonic/gin"
)

// deleteRow removes the row of type T named by the :id path parameter.
func deleteRow[T any](c *gin.Context, resource string) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var row T
	if err := database.DB.First(&row, id).Error; err != nil {
		respondError(c, resource, logging.OpDelete, err)
		return
	}

	if err := database.DB.Delete(&row).Error; err != nil {
		respondError(c, resource, logging.OpDelete, err)
		return
	}

	lg.Info("row deleted", logging.FieldResource, resource, "id", id)
	c.JSON(http.StatusOK, gin.H{"details": "Deleted"})
}
