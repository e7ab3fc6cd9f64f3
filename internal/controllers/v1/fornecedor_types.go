package v1

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/livro-caixa/backend/internal/models"
	"golang.org/x/exp/slices"
)

type FornecedorEditable struct {
	Nome string `json:"nome" example:"Auto Pecas Silva"` // Name of the fornecedor, must be unique
}

// model returns the database resource for the API representation of the editable fields
func (editable FornecedorEditable) model() models.Fornecedor {
	return models.Fornecedor{
		Nome: editable.Nome,
	}
}

// validate checks the editable fields for acceptable values. If fields
// are passed, only these are checked, otherwise all of them are.
func (editable FornecedorEditable) validate(fields ...any) error {
	all := len(fields) == 0

	if (all || slices.Contains(fields, "Nome")) && strings.TrimSpace(editable.Nome) == "" {
		return errNomeRequired
	}

	return nil
}

type FornecedorLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/fornecedores/d430d7c3-d14c-4712-9336-ee56965a6673"` // The fornecedor itself
}

// Fornecedor is the representation of a Fornecedor in API v1.
type Fornecedor struct {
	models.DefaultModel
	FornecedorEditable
	Links FornecedorLinks `json:"links"`
}

// newFornecedor returns the API v1 representation of the resource
func newFornecedor(c *gin.Context, model models.Fornecedor) Fornecedor {
	url := c.GetString(string(models.ContextURL))

	return Fornecedor{
		DefaultModel: model.DefaultModel,
		FornecedorEditable: FornecedorEditable{
			Nome: model.Nome,
		},
		Links: FornecedorLinks{
			Self: fmt.Sprintf("%s/v1/fornecedores/%s", url, model.ID),
		},
	}
}

type FornecedorListResponse struct {
	Data  []Fornecedor `json:"data"`                                                          // List of fornecedores
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type FornecedorResponse struct {
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this fornecedor
	Data  *Fornecedor `json:"data"`                                                          // The Fornecedor data, if the request was successful
}

type FornecedorQueryFilter struct {
	Nome string `form:"nome" filterField:"false"` // Nome contains this string
}
