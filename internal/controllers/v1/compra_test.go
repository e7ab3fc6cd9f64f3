package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/livro-caixa/backend/internal/controllers/v1"
	"github.com/livro-caixa/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestCompra creates a test compra via the v1 API.
func createTestCompra(t *testing.T, compra v1.CompraEditable, expectedStatus ...int) v1.CompraResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/compras", compra)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var cr v1.CompraResponse
	test.DecodeResponse(t, &r, &cr)

	return cr
}

func (suite *TestSuiteStandard) TestCompraCreate() {
	response := createTestCompra(suite.T(), v1.CompraEditable{
		Fornecedor: "Distribuidora Central",
		Valor:      decimal.NewFromFloat(1203.99),
		NF:         "000.123.456",
		Data:       time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
	})

	data := response.Data
	require.NotNil(suite.T(), data)
	assert.Equal(suite.T(), "Distribuidora Central", data.Fornecedor)
	assert.Equal(suite.T(), "000.123.456", string(data.NF))
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/compras/%s", data.ID), data.Links.Self)
}

// TestCompraCreateNumericNF verifies that the nota fiscal number is
// accepted as a JSON number. Historical clients send it that way.
func (suite *TestSuiteStandard) TestCompraCreateNumericNF() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/compras", map[string]any{
		"fornecedor": "Distribuidora Central",
		"valor":      500,
		"nf":         48213,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CompraResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "48213", string(response.Data.NF))
}

func (suite *TestSuiteStandard) TestCompraCreateInvalid() {
	tests := []struct {
		name   string
		compra v1.CompraEditable
		error  string
	}{
		{"empty fornecedor", v1.CompraEditable{Valor: decimal.NewFromFloat(1)}, "the fornecedor field must be set"},
		{"negative valor", v1.CompraEditable{Fornecedor: "X", Valor: decimal.NewFromFloat(-1)}, "the valor field must not be negative"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := createTestCompra(t, tt.compra, http.StatusBadRequest)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.error)
		})
	}
}

func (suite *TestSuiteStandard) TestCompraGet() {
	created := createTestCompra(suite.T(), v1.CompraEditable{Fornecedor: "X", Valor: decimal.NewFromFloat(10)})

	r := test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCompraGetNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/compras/a6e13b5a-6b48-4a34-9a5b-8f51a2a2e6b0", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	assert.Equal(suite.T(), "there is no compra matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestCompraUpdate() {
	created := createTestCompra(suite.T(), v1.CompraEditable{Fornecedor: "X", Valor: decimal.NewFromFloat(10)})

	r := test.Request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{
		"nf": "999.888.777",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CompraResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "999.888.777", string(response.Data.NF))
	assert.Equal(suite.T(), "X", response.Data.Fornecedor)
}

func (suite *TestSuiteStandard) TestCompraDelete() {
	created := createTestCompra(suite.T(), v1.CompraEditable{Fornecedor: "X", Valor: decimal.NewFromFloat(10)})

	r := test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestComprasGetFiltered() {
	_ = createTestCompra(suite.T(), v1.CompraEditable{
		Fornecedor: "Distribuidora Central",
		Valor:      decimal.NewFromFloat(500),
		NF:         "000.111.222",
		Data:       time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
	})

	_ = createTestCompra(suite.T(), v1.CompraEditable{
		Fornecedor: "Auto Pecas Silva",
		Valor:      decimal.NewFromFloat(1500),
		Data:       time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Fornecedor substring", "fornecedor=Central", 1},
		{"NF", "nf=000.111.222", 1},
		{"From date", "fromDate=2025-04-01T00:00:00Z", 1},
		{"Until date", "untilDate=2025-03-31T00:00:00Z", 1},
		{"Valor more or equal", "valorMoreOrEqual=1000", 1},
		{"No filter", "", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/compras?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CompraListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data))
		})
	}
}
