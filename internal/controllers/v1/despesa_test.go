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

// testDespesa returns a valid DespesaEditable for tests.
func testDespesa() v1.DespesaEditable {
	return v1.DespesaEditable{
		Conta:      "Servicos",
		Valor:      decimal.NewFromFloat(140.30),
		Descricao:  "Conserto da bomba",
		Fornecedor: "Auto Pecas Silva",
		Tipo:       "variavel",
		Data:       time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
		Loja:       "QI",
	}
}

// createTestDespesa creates a test despesa via the v1 API.
func createTestDespesa(t *testing.T, despesa v1.DespesaEditable, expectedStatus ...int) v1.DespesaResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/despesas", despesa)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var dr v1.DespesaResponse
	test.DecodeResponse(t, &r, &dr)

	return dr
}

// TestDespesasOptions verifies that the HTTP OPTIONS response for /despesas/{id} is correct.
func (suite *TestSuiteStandard) TestDespesasOptions() {
	tests := []struct {
		name     string        // Name for the test
		status   int           // Expected HTTP status
		id       string        // String to use as ID. Ignored when pathFunc is non-nil
		pathFunc func() string // Function returning the path
	}{
		{
			"Does not exist",
			http.StatusNotFound,
			"a6e13b5a-6b48-4a34-9a5b-8f51a2a2e6b0",
			nil,
		},
		{
			"Invalid UUID",
			http.StatusBadRequest,
			"NotParseableAsUUID",
			nil,
		},
		{
			"Success",
			http.StatusNoContent,
			"",
			func() string {
				return createTestDespesa(suite.T(), testDespesa()).Data.Links.Self
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc()
			} else {
				p = fmt.Sprintf("%s/%s", "http://example.com/v1/despesas", tt.id)
			}

			r := test.Request(t, http.MethodOptions, p, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestDespesaCreate() {
	response := createTestDespesa(suite.T(), testDespesa())

	data := response.Data
	require.NotNil(suite.T(), data)
	assert.Equal(suite.T(), "Servicos", data.Conta)
	assert.Equal(suite.T(), "Conserto da bomba", data.Descricao)
	assert.Equal(suite.T(), "Auto Pecas Silva", data.Fornecedor)
	assert.False(suite.T(), data.Pago, "a new despesa must not be paid")
	assert.Empty(suite.T(), data.Comprovante)
	assert.Empty(suite.T(), data.Boleto)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/despesas/%s", data.ID), data.Links.Self)
	assert.Empty(suite.T(), data.Links.Comprovante, "a despesa without comprovante must not link one")
	assert.True(suite.T(), decimal.NewFromFloat(140.30).Equal(data.Valor))
}

func (suite *TestSuiteStandard) TestDespesaCreateInvalid() {
	tests := []struct {
		name   string
		modify func(*v1.DespesaEditable)
		error  string
	}{
		{"unknown conta", func(d *v1.DespesaEditable) { d.Conta = "Cartola" }, "the conta field must be one of"},
		{"unknown tipo", func(d *v1.DespesaEditable) { d.Tipo = "mensal" }, "the tipo field must be one of"},
		{"unknown loja", func(d *v1.DespesaEditable) { d.Loja = "XYZ" }, "the loja field must be one of"},
		{"negative valor", func(d *v1.DespesaEditable) { d.Valor = decimal.NewFromFloat(-1) }, "the valor field must not be negative"},
		{"empty descricao", func(d *v1.DespesaEditable) { d.Descricao = " " }, "the descricao field must be set"},
		{"empty fornecedor", func(d *v1.DespesaEditable) { d.Fornecedor = "" }, "the fornecedor field must be set"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			despesa := testDespesa()
			tt.modify(&despesa)

			response := createTestDespesa(t, despesa, http.StatusBadRequest)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.error)
		})
	}
}

func (suite *TestSuiteStandard) TestDespesaCreateBrokenJSON() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/despesas", `{ "conta": "Servicos" broken`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDespesaCreateEmptyBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/despesas", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.DespesaResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "the request body must not be empty", *response.Error)
}

func (suite *TestSuiteStandard) TestDespesaGet() {
	created := createTestDespesa(suite.T(), testDespesa())

	r := test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DespesaResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), created.Data.ID, response.Data.ID)
	assert.Equal(suite.T(), time.UTC, response.Data.Data.Location(), "the date must be normalized to UTC")
}

func (suite *TestSuiteStandard) TestDespesaGetNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/despesas/a6e13b5a-6b48-4a34-9a5b-8f51a2a2e6b0", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	assert.Equal(suite.T(), "there is no despesa matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestDespesaUpdate() {
	created := createTestDespesa(suite.T(), testDespesa())

	r := test.Request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{
		"descricao": "Troca da bomba",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DespesaResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Troca da bomba", response.Data.Descricao)
	assert.Equal(suite.T(), "Auto Pecas Silva", response.Data.Fornecedor, "fields not in the PATCH body must be unchanged")
}

func (suite *TestSuiteStandard) TestDespesaUpdateInvalid() {
	created := createTestDespesa(suite.T(), testDespesa())

	r := test.Request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{
		"conta": "NotAConta",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestDespesaMarkPaid verifies that a despesa can be marked as paid
// and unpaid again via PATCH.
func (suite *TestSuiteStandard) TestDespesaMarkPaid() {
	created := createTestDespesa(suite.T(), testDespesa())
	require.False(suite.T(), created.Data.Pago)

	r := test.Request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{
		"pago": true,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DespesaResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Pago)

	// Undo via the same endpoint
	r = test.Request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{
		"pago": false,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.False(suite.T(), response.Data.Pago)
}

func (suite *TestSuiteStandard) TestDespesaDelete() {
	created := createTestDespesa(suite.T(), testDespesa())

	r := test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDespesasGetFiltered() {
	_ = createTestDespesa(suite.T(), v1.DespesaEditable{
		Conta:      "Servicos",
		Valor:      decimal.NewFromFloat(100),
		Descricao:  "Manutencao do ar condicionado",
		Fornecedor: "Clima Frio",
		Tipo:       "fixo",
		Data:       time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
		Loja:       "QI",
	})

	_ = createTestDespesa(suite.T(), v1.DespesaEditable{
		Conta:      "Revenda",
		Valor:      decimal.NewFromFloat(2500),
		Descricao:  "Estoque de pecas",
		Fornecedor: "Distribuidora Central",
		Tipo:       "variavel",
		Data:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Loja:       "QNE",
		Pago:       true,
	})

	_ = createTestDespesa(suite.T(), v1.DespesaEditable{
		Conta:      "Impostos",
		Valor:      decimal.NewFromFloat(812.77),
		Descricao:  "Simples Nacional",
		Fornecedor: "Receita Federal",
		Tipo:       "fixo",
		Data:       time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Loja:       "QI",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Conta", "conta=Servicos", 1},
		{"Tipo", "tipo=fixo", 2},
		{"Loja", "loja=QI", 2},
		{"Pago", "pago=true", 1},
		{"Not paid", "pago=false", 2},
		{"Fornecedor substring", "fornecedor=Central", 1},
		{"Descricao substring", "descricao=pecas", 1},
		{"Exact date", "date=2025-03-10T00:00:00Z", 1},
		{"From date", "fromDate=2025-03-10T00:00:00Z", 2},
		{"Until date", "untilDate=2025-03-10T00:00:00Z", 2},
		{"Valor less or equal", "valorLessOrEqual=500", 1},
		{"Valor more or equal", "valorMoreOrEqual=500", 2},
		{"Combined", "loja=QI&tipo=fixo&pago=false", 2},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
		{"No match", "conta=Pessoal", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/despesas?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.DespesaListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data), "wrong number of despesas for query %q", tt.query)
		})
	}
}

// TestDespesasGetFilteredHoje verifies the predefined "contas a pagar
// do dia" view.
func (suite *TestSuiteStandard) TestDespesasGetFilteredHoje() {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.Nil(suite.T(), err)

	now := time.Now().In(saoPaulo)
	today := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, time.UTC)

	due := testDespesa()
	due.Data = today
	_ = createTestDespesa(suite.T(), due)

	past := testDespesa()
	past.Data = today.AddDate(0, 0, -14)
	_ = createTestDespesa(suite.T(), past)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/despesas?filtro=hoje&pago=false", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DespesaListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), today.Format("2006-01-02"), response.Data[0].Data.Format("2006-01-02"))
}

func (suite *TestSuiteStandard) TestDespesasGetFilteredInvalidFiltro() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/despesas?filtro=amanha", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.DespesaListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, "the specified filtro is invalid")
}

func (suite *TestSuiteStandard) TestDespesasGetSorted() {
	first := createTestDespesa(suite.T(), testDespesa())

	later := testDespesa()
	later.Data = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	second := createTestDespesa(suite.T(), later)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/despesas", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DespesaListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)

	// Newest date first
	assert.Equal(suite.T(), second.Data.ID, response.Data[0].ID)
	assert.Equal(suite.T(), first.Data.ID, response.Data[1].ID)
}

// TestDespesasDatabaseError verifies that the endpoints return the
// appropriate error when the database is disconnected.
func (suite *TestSuiteStandard) TestDespesasDatabaseError() {
	tests := []struct {
		name   string // Name of the test
		path   string // Path to send request to
		method string // HTTP method to use
		body   string // The request body
	}{
		{"GET Collection", "", http.MethodGet, ""},
		{"OPTIONS Single", "/a6e13b5a-6b48-4a34-9a5b-8f51a2a2e6b0", http.MethodOptions, ""},
		{"GET Single", "/a6e13b5a-6b48-4a34-9a5b-8f51a2a2e6b0", http.MethodGet, ""},
		{"PATCH Single", "/a6e13b5a-6b48-4a34-9a5b-8f51a2a2e6b0", http.MethodPatch, ""},
		{"DELETE Single", "/a6e13b5a-6b48-4a34-9a5b-8f51a2a2e6b0", http.MethodDelete, ""},
		{"GET Comprovante", "/comprovante/a6e13b5a-6b48-4a34-9a5b-8f51a2a2e6b0", http.MethodGet, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			recorder := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/despesas%s", tt.path), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
			assert.Equal(t, "an error occurred on the server during your request", test.DecodeError(t, recorder.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestDespesasPagination() {
	for i := 0; i < 5; i++ {
		_ = createTestDespesa(suite.T(), testDespesa())
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/despesas?offset=2&limit=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DespesaListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), 2, response.Pagination.Count)
	assert.Equal(suite.T(), uint(2), response.Pagination.Offset)
	assert.Equal(suite.T(), 2, response.Pagination.Limit)
	assert.Equal(suite.T(), int64(5), response.Pagination.Total)
}
