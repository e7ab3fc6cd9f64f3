package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/livro-caixa/backend/internal/models"
)

// Cleanup permanently deletes all resources. The stored resources are
// independent of each other, so the deletion order does not matter, but
// a transaction still ensures that a failure leaves everything in
// place.
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	resources := []any{
		models.Despesa{},
		models.Compra{},
		models.Receita{},
		models.Fornecedor{},
	}

	tx := models.DB.Begin()

	for _, model := range resources {
		err := tx.Unscoped().Where("true").Delete(&model).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{
				Error: err.Error(),
			})
			tx.Rollback()
			return
		}
	}

	tx.Commit()
	c.JSON(http.StatusNoContent, nil)
}
