package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/livro-caixa/backend/internal/documents"
	"github.com/livro-caixa/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type DespesaEditable struct {
	Conta string `json:"conta" form:"conta" example:"Servicos"` // The expense account

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Valor decimal.Decimal `json:"valor" form:"valor" example:"140.30" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the despesa

	Descricao  string    `json:"descricao" form:"descricao" example:"Conserto da bomba"`                                // What the despesa was for
	Fornecedor string    `json:"fornecedor" form:"fornecedor" example:"Auto Pecas Silva"`                               // Who gets paid
	Tipo       string    `json:"tipo" form:"tipo" example:"variavel"`                                                   // Whether the despesa recurs every month
	Data       time.Time `json:"data" form:"data" time_format:"2006-01-02" time_utc:"1" example:"2025-03-07T00:00:00Z"` // Due date of the despesa
	Loja       string    `json:"loja" form:"loja" example:"QI"`                                                         // The store the despesa belongs to
	Pago       bool      `json:"pago" form:"pago" example:"true" default:"false"`                                       // Has the despesa been paid?
}

// model returns the database resource for the API representation of the editable fields
func (editable DespesaEditable) model() models.Despesa {
	return models.Despesa{
		Conta:      editable.Conta,
		Valor:      editable.Valor,
		Descricao:  editable.Descricao,
		Fornecedor: editable.Fornecedor,
		Tipo:       editable.Tipo,
		Data:       editable.Data,
		Loja:       editable.Loja,
		Pago:       editable.Pago,
	}
}

// validate checks the editable fields for acceptable values. If fields
// are passed, only these are checked, otherwise all of them are.
func (editable DespesaEditable) validate(fields ...any) error {
	all := len(fields) == 0

	if (all || slices.Contains(fields, "Conta")) && !slices.Contains(models.Contas, editable.Conta) {
		return errContaInvalid
	}

	if (all || slices.Contains(fields, "Valor")) && editable.Valor.IsNegative() {
		return errValorNegative
	}

	if (all || slices.Contains(fields, "Descricao")) && strings.TrimSpace(editable.Descricao) == "" {
		return errDescricaoRequired
	}

	if (all || slices.Contains(fields, "Fornecedor")) && strings.TrimSpace(editable.Fornecedor) == "" {
		return errFornecedorRequired
	}

	if (all || slices.Contains(fields, "Tipo")) && !slices.Contains(models.Tipos, editable.Tipo) {
		return errTipoInvalid
	}

	if (all || slices.Contains(fields, "Loja")) && !slices.Contains(models.Lojas, editable.Loja) {
		return errLojaInvalid
	}

	return nil
}

type DespesaLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/despesas/d430d7c3-d14c-4712-9336-ee56965a6673"`          // The despesa itself
	Comprovante string `json:"comprovante" example:"https://cloud.example.com/s/x4Rd9BcTW"`                                      // Where the receipt opens, empty if there is none
	Boleto      string `json:"boleto" example:"https://example.com/api/v1/despesas/boleto/d430d7c3-d14c-4712-9336-ee56965a6673"` // Where the payment slip opens, empty if there is none
}

// Despesa is the representation of a Despesa in API v1.
type Despesa struct {
	models.DefaultModel
	DespesaEditable
	Comprovante string       `json:"comprovante" example:"https://cloud.example.com/s/x4Rd9BcTW"` // Stored reference to the receipt
	Boleto      string       `json:"boleto" example:""`                                           // Stored reference to the payment slip
	Links       DespesaLinks `json:"links"`
}

// newDespesa returns the API v1 representation of the resource
func newDespesa(c *gin.Context, model models.Despesa) Despesa {
	url := c.GetString(string(models.ContextURL))

	return Despesa{
		DefaultModel: model.DefaultModel,
		DespesaEditable: DespesaEditable{
			Conta:      model.Conta,
			Valor:      model.Valor,
			Descricao:  model.Descricao,
			Fornecedor: model.Fornecedor,
			Tipo:       model.Tipo,
			Data:       model.Data,
			Loja:       model.Loja,
			Pago:       model.Pago,
		},
		Comprovante: model.Comprovante,
		Boleto:      model.Boleto,
		Links: DespesaLinks{
			Self:        fmt.Sprintf("%s/v1/despesas/%s", url, model.ID),
			Comprovante: documents.DisplayURL(model.Comprovante, fmt.Sprintf("%s/v1/despesas/comprovante/%s", url, model.ID)),
			Boleto:      documents.DisplayURL(model.Boleto, fmt.Sprintf("%s/v1/despesas/boleto/%s", url, model.ID)),
		},
	}
}

type DespesaListResponse struct {
	Data       []Despesa   `json:"data"`                                                          // List of despesas
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DespesaResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this despesa
	Data  *Despesa `json:"data"`                                                          // The Despesa data, if the request was successful
}

// Filtro selects predefined views over the despesas.
const (
	FiltroHoje  = "hoje"
	FiltroTodas = "todas"
)

type DespesaQueryFilter struct {
	Conta            string          `form:"conta"`                                // Filter by expense account
	Tipo             string          `form:"tipo"`                                 // Filter by recurrence type
	Loja             string          `form:"loja"`                                 // Filter by store
	Fornecedor       string          `form:"fornecedor" filterField:"false"`       // Fornecedor name contains this string
	Pago             bool            `form:"pago"`                                 // Filter by payment state
	Descricao        string          `form:"descricao" filterField:"false"`        // Descricao contains this string
	Date             time.Time       `form:"date" filterField:"false"`             // Exact date. Time is ignored.
	FromDate         time.Time       `form:"fromDate" filterField:"false"`         // From this date. Time is ignored.
	UntilDate        time.Time       `form:"untilDate" filterField:"false"`        // Until this date. Time is ignored.
	ValorLessOrEqual decimal.Decimal `form:"valorLessOrEqual" filterField:"false"` // Valor less than or equal to this
	ValorMoreOrEqual decimal.Decimal `form:"valorMoreOrEqual" filterField:"false"` // Valor more than or equal to this
	Filtro           string          `form:"filtro" filterField:"false"`           // Predefined view, "hoje" restricts to despesas due today
	Offset           uint            `form:"offset" filterField:"false"`           // The offset of the first Despesa returned. Defaults to 0.
	Limit            int             `form:"limit" filterField:"false"`            // Maximum number of despesas to return. Defaults to 50.
}

// model returns the database resource for the API filter
func (f DespesaQueryFilter) model() models.Despesa {
	// This does not set the string match or date fields since they are
	// handled in the controller function
	return models.Despesa{
		Conta: f.Conta,
		Tipo:  f.Tipo,
		Loja:  f.Loja,
		Pago:  f.Pago,
	}
}
