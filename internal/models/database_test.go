package models_test

import (
	"testing"

	"github.com/livro-caixa/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

// TestTableNames verifies the Portuguese table names. The raw SQL in the
// list queries and the unique constraint rewrite depend on them, so a
// drift here breaks endpoints that the default English pluralization
// would silently misname.
func (suite *TestSuiteStandard) TestTableNames() {
	for _, name := range []string{"despesas", "compras", "receitas", "fornecedores"} {
		assert.True(suite.T(), models.DB.Migrator().HasTable(name), "table %s does not exist", name)
	}
}

// TestResourceNotFoundMessage verifies that the generic gorm "record not
// found" error is replaced with one naming the resource. The table name
// is singularized, which needs a special case for the Latin plural of
// "fornecedores".
func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	tests := []struct {
		name     string
		expected string
		query    func() error
	}{
		{"despesas", "there is no despesa matching your query", func() error {
			return models.DB.First(&models.Despesa{}, "descricao = ?", "does not exist").Error
		}},
		{"compras", "there is no compra matching your query", func() error {
			return models.DB.First(&models.Compra{}, "nf = ?", "does not exist").Error
		}},
		{"receitas", "there is no receita matching your query", func() error {
			return models.DB.First(&models.Receita{}, "descricao = ?", "does not exist").Error
		}},
		{"fornecedores", "there is no fornecedor matching your query", func() error {
			return models.DB.First(&models.Fornecedor{}, "nome = ?", "does not exist").Error
		}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.query()
			assert.ErrorIs(t, err, models.ErrResourceNotFound)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

// TestGeneralError verifies that errors we cannot say anything useful
// about are replaced with a generic message.
func (suite *TestSuiteStandard) TestGeneralError() {
	suite.CloseDB()

	err := models.DB.First(&models.Despesa{}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
