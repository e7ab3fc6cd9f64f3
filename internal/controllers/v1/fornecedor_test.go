package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/livro-caixa/backend/internal/controllers/v1"
	"github.com/livro-caixa/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestFornecedor creates a test fornecedor via the v1 API.
func createTestFornecedor(t *testing.T, fornecedor v1.FornecedorEditable, expectedStatus ...int) v1.FornecedorResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/fornecedores", fornecedor)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var fr v1.FornecedorResponse
	test.DecodeResponse(t, &r, &fr)

	return fr
}

func (suite *TestSuiteStandard) TestFornecedorCreate() {
	response := createTestFornecedor(suite.T(), v1.FornecedorEditable{Nome: "Auto Pecas Silva"})

	data := response.Data
	require.NotNil(suite.T(), data)
	assert.Equal(suite.T(), "Auto Pecas Silva", data.Nome)
}

func (suite *TestSuiteStandard) TestFornecedorCreateEmptyNome() {
	response := createTestFornecedor(suite.T(), v1.FornecedorEditable{Nome: "  "}, http.StatusBadRequest)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "the nome field must be set", *response.Error)
}

// TestFornecedorCreateDuplicate verifies that fornecedor names are
// unique.
func (suite *TestSuiteStandard) TestFornecedorCreateDuplicate() {
	_ = createTestFornecedor(suite.T(), v1.FornecedorEditable{Nome: "Auto Pecas Silva"})

	response := createTestFornecedor(suite.T(), v1.FornecedorEditable{Nome: "Auto Pecas Silva"}, http.StatusBadRequest)
	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, "must be unique")
}

func (suite *TestSuiteStandard) TestFornecedorUpdate() {
	created := createTestFornecedor(suite.T(), v1.FornecedorEditable{Nome: "Auto Pecas Silva"})

	r := test.Request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{
		"nome": "Auto Pecas Silva e Filhos",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FornecedorResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Auto Pecas Silva e Filhos", response.Data.Nome)
}

func (suite *TestSuiteStandard) TestFornecedorDelete() {
	created := createTestFornecedor(suite.T(), v1.FornecedorEditable{Nome: "Auto Pecas Silva"})

	r := test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestFornecedoresGetSorted verifies the collation aware ordering.
// Accented names sort next to their unaccented spelling, not after "z".
func (suite *TestSuiteStandard) TestFornecedoresGetSorted() {
	for _, nome := range []string{"Zebra Pecas", "Ótica Central", "Acougue do Ze", "Água Mineral Sul"} {
		_ = createTestFornecedor(suite.T(), v1.FornecedorEditable{Nome: nome})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/fornecedores", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FornecedorListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 4)

	names := make([]string, 0, len(response.Data))
	for _, f := range response.Data {
		names = append(names, f.Nome)
	}

	assert.Equal(suite.T(), []string{"Acougue do Ze", "Água Mineral Sul", "Ótica Central", "Zebra Pecas"}, names)
}

func (suite *TestSuiteStandard) TestFornecedoresGetFiltered() {
	_ = createTestFornecedor(suite.T(), v1.FornecedorEditable{Nome: "Auto Pecas Silva"})
	_ = createTestFornecedor(suite.T(), v1.FornecedorEditable{Nome: "Distribuidora Central"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/fornecedores?nome=Pecas", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FornecedorListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Auto Pecas Silva", response.Data[0].Nome)
}
