package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/livro-caixa/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type ReceitaEditable struct {
	Conta     string          `json:"conta" example:"Pix"`                                                       // How the money came in
	Loja      string          `json:"loja" example:"QI"`                                                         // The store the receita belongs to
	Valor     decimal.Decimal `json:"valor" example:"350.00"`                                                    // The amount of the receita
	Descricao string          `json:"descricao" example:"Venda balcao" default:""`                               // A note
	Data      time.Time       `json:"data" time_format:"2006-01-02" time_utc:"1" example:"2025-03-07T00:00:00Z"` // Date of the receita
}

// model returns the database resource for the API representation of the editable fields
func (editable ReceitaEditable) model() models.Receita {
	return models.Receita{
		Conta:     editable.Conta,
		Loja:      editable.Loja,
		Valor:     editable.Valor,
		Descricao: editable.Descricao,
		Data:      editable.Data,
	}
}

// validate checks the editable fields for acceptable values. If fields
// are passed, only these are checked, otherwise all of them are.
func (editable ReceitaEditable) validate(fields ...any) error {
	all := len(fields) == 0

	if (all || slices.Contains(fields, "Conta")) && !slices.Contains(models.ReceitaContas, editable.Conta) {
		return errReceitaContaInvalid
	}

	if (all || slices.Contains(fields, "Loja")) && !slices.Contains(models.Lojas, editable.Loja) {
		return errLojaInvalid
	}

	if (all || slices.Contains(fields, "Valor")) && editable.Valor.IsNegative() {
		return errValorNegative
	}

	return nil
}

type ReceitaLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/receitas/d430d7c3-d14c-4712-9336-ee56965a6673"` // The receita itself
}

// Receita is the representation of a Receita in API v1.
type Receita struct {
	models.DefaultModel
	ReceitaEditable
	Links ReceitaLinks `json:"links"`
}

// newReceita returns the API v1 representation of the resource
func newReceita(c *gin.Context, model models.Receita) Receita {
	url := c.GetString(string(models.ContextURL))

	return Receita{
		DefaultModel: model.DefaultModel,
		ReceitaEditable: ReceitaEditable{
			Conta:     model.Conta,
			Loja:      model.Loja,
			Valor:     model.Valor,
			Descricao: model.Descricao,
			Data:      model.Data,
		},
		Links: ReceitaLinks{
			Self: fmt.Sprintf("%s/v1/receitas/%s", url, model.ID),
		},
	}
}

type ReceitaListResponse struct {
	Data       []Receita   `json:"data"`                                                          // List of receitas
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ReceitaResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this receita
	Data  *Receita `json:"data"`                                                          // The Receita data, if the request was successful
}

type ReceitaQueryFilter struct {
	Conta            string          `form:"conta"`                                // Filter by account
	Loja             string          `form:"loja"`                                 // Filter by store
	Descricao        string          `form:"descricao" filterField:"false"`        // Descricao contains this string
	Date             time.Time       `form:"date" filterField:"false"`             // Exact date. Time is ignored.
	FromDate         time.Time       `form:"fromDate" filterField:"false"`         // From this date. Time is ignored.
	UntilDate        time.Time       `form:"untilDate" filterField:"false"`        // Until this date. Time is ignored.
	ValorLessOrEqual decimal.Decimal `form:"valorLessOrEqual" filterField:"false"` // Valor less than or equal to this
	ValorMoreOrEqual decimal.Decimal `form:"valorMoreOrEqual" filterField:"false"` // Valor more than or equal to this
	Offset           uint            `form:"offset" filterField:"false"`           // The offset of the first Receita returned. Defaults to 0.
	Limit            int             `form:"limit" filterField:"false"`            // Maximum number of receitas to return. Defaults to 50.
}

// model returns the database resource for the API filter
func (f ReceitaQueryFilter) model() models.Receita {
	return models.Receita{
		Conta: f.Conta,
		Loja:  f.Loja,
	}
}
