package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/livro-caixa/backend/internal/models"
	"github.com/livro-caixa/backend/internal/nextcloud"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// uploadStatus returns the appropriate status for a document upload
// error. Missing connection settings are a server misconfiguration,
// failures in the remote store map to Bad Gateway.
func uploadStatus(err error) int {
	if errors.Is(err, nextcloud.ErrNotConfigured) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, nextcloud.ErrUpload) || errors.Is(err, nextcloud.ErrShare) || errors.Is(err, nextcloud.ErrShareNoURL) {
		return http.StatusBadGateway
	}

	return http.StatusBadRequest
}

// Validation errors
var (
	errContaInvalid        = fmt.Errorf("the conta field must be one of: %s", strings.Join(models.Contas, ", "))
	errTipoInvalid         = fmt.Errorf("the tipo field must be one of: %s", strings.Join(models.Tipos, ", "))
	errLojaInvalid         = fmt.Errorf("the loja field must be one of: %s", strings.Join(models.Lojas, ", "))
	errReceitaContaInvalid = fmt.Errorf("the conta field must be one of: %s", strings.Join(models.ReceitaContas, ", "))
	errValorNegative       = errors.New("the valor field must not be negative")
	errDescricaoRequired   = errors.New("the descricao field must be set")
	errFornecedorRequired  = errors.New("the fornecedor field must be set")
	errNomeRequired        = errors.New("the nome field must be set")
)

// Filter errors
var (
	errFiltroInvalid = errors.New("the specified filtro is invalid, it must be 'hoje' or 'todas'")
)

// Document errors
var (
	errNoFilePost        = errors.New("you must send a file to this endpoint")
	errDocumentoGone     = errors.New("this document is stored in the retired legacy store and cannot be opened. Migrate the file to Nextcloud")
	errDocumentoInvalid  = errors.New("the stored document reference is not valid")
	errDocumentoNotFound = errors.New("there is no document in this slot for the despesa")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
