package models_test

import (
	"github.com/livro-caixa/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestFornecedorTrimmed() {
	fornecedor := suite.createTestFornecedor(models.Fornecedor{Nome: "  Zebra Pecas "})
	assert.Equal(suite.T(), "Zebra Pecas", fornecedor.Nome)
}

// TestFornecedorNomeUnique verifies that the database error for a
// duplicate name is translated to a user readable one.
func (suite *TestSuiteStandard) TestFornecedorNomeUnique() {
	_ = suite.createTestFornecedor(models.Fornecedor{Nome: "Distribuidora Sao Jorge"})

	duplicate := models.Fornecedor{Nome: "Distribuidora Sao Jorge"}
	err := models.DB.Create(&duplicate).Error

	assert.ErrorIs(suite.T(), err, models.ErrFornecedorNomeNotUnique)
}
