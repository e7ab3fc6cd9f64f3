package v1

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/livro-caixa/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// NF is the number of a nota fiscal. Historical clients send it as a
// JSON number, current ones as a string. Both are accepted, stored it is
// always a string.
type NF string

// UnmarshalJSON accepts both string and number representations.
func (n *NF) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = NF(s)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}

	*n = NF(number.String())
	return nil
}

type CompraEditable struct {
	Fornecedor string          `json:"fornecedor" example:"Distribuidora Central"`                                // Who the purchase was made from
	Valor      decimal.Decimal `json:"valor" example:"1203.99"`                                                   // The amount of the compra
	NF         NF              `json:"nf" example:"000.123.456" default:""`                                       // Number of the nota fiscal
	Data       time.Time       `json:"data" time_format:"2006-01-02" time_utc:"1" example:"2025-03-07T00:00:00Z"` // Date of the compra
}

// model returns the database resource for the API representation of the editable fields
func (editable CompraEditable) model() models.Compra {
	return models.Compra{
		Fornecedor: editable.Fornecedor,
		Valor:      editable.Valor,
		NF:         string(editable.NF),
		Data:       editable.Data,
	}
}

// validate checks the editable fields for acceptable values. If fields
// are passed, only these are checked, otherwise all of them are.
func (editable CompraEditable) validate(fields ...any) error {
	all := len(fields) == 0

	if (all || slices.Contains(fields, "Fornecedor")) && strings.TrimSpace(editable.Fornecedor) == "" {
		return errFornecedorRequired
	}

	if (all || slices.Contains(fields, "Valor")) && editable.Valor.IsNegative() {
		return errValorNegative
	}

	return nil
}

type CompraLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/compras/d430d7c3-d14c-4712-9336-ee56965a6673"` // The compra itself
}

// Compra is the representation of a Compra in API v1.
type Compra struct {
	models.DefaultModel
	CompraEditable
	Links CompraLinks `json:"links"`
}

// newCompra returns the API v1 representation of the resource
func newCompra(c *gin.Context, model models.Compra) Compra {
	url := c.GetString(string(models.ContextURL))

	return Compra{
		DefaultModel: model.DefaultModel,
		CompraEditable: CompraEditable{
			Fornecedor: model.Fornecedor,
			Valor:      model.Valor,
			NF:         NF(model.NF),
			Data:       model.Data,
		},
		Links: CompraLinks{
			Self: fmt.Sprintf("%s/v1/compras/%s", url, model.ID),
		},
	}
}

type CompraListResponse struct {
	Data       []Compra    `json:"data"`                                                          // List of compras
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CompraResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this compra
	Data  *Compra `json:"data"`                                                          // The Compra data, if the request was successful
}

type CompraQueryFilter struct {
	Fornecedor       string          `form:"fornecedor" filterField:"false"`       // Fornecedor name contains this string
	NF               string          `form:"nf"`                                   // Filter by nota fiscal number
	Date             time.Time       `form:"date" filterField:"false"`             // Exact date. Time is ignored.
	FromDate         time.Time       `form:"fromDate" filterField:"false"`         // From this date. Time is ignored.
	UntilDate        time.Time       `form:"untilDate" filterField:"false"`        // Until this date. Time is ignored.
	ValorLessOrEqual decimal.Decimal `form:"valorLessOrEqual" filterField:"false"` // Valor less than or equal to this
	ValorMoreOrEqual decimal.Decimal `form:"valorMoreOrEqual" filterField:"false"` // Valor more than or equal to this
	Offset           uint            `form:"offset" filterField:"false"`           // The offset of the first Compra returned. Defaults to 0.
	Limit            int             `form:"limit" filterField:"false"`            // Maximum number of compras to return. Defaults to 50.
}

// model returns the database resource for the API filter
func (f CompraQueryFilter) model() models.Compra {
	return models.Compra{
		NF: f.NF,
	}
}
