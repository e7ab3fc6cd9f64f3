package v1

import (
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/livro-caixa/backend/internal/documents"
	"github.com/livro-caixa/backend/internal/models"
	"github.com/livro-caixa/backend/internal/nextcloud"
)

// uploadFormFile sends a multipart file to the document store and
// returns the public share link.
func uploadFormFile(c *gin.Context, nc *nextcloud.Client, file *multipart.FileHeader, kind documents.Kind, date time.Time, despesaID string) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	if date.IsZero() {
		date = time.Now()
	}

	name := documents.DatedFilename(kind, file.Filename, date)
	return nc.Upload(c.Request.Context(), content, name, nextcloud.UploadOptions{DespesaID: despesaID})
}

// UploadDespesaDocument stores the file sent in the "file" form part as
// the document of the given kind for an existing despesa. A file that
// is already stored in the slot is replaced.
func UploadDespesaDocument(nc *nextcloud.Client, kind documents.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri URIID
		err := c.ShouldBindUri(&uri)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), DespesaResponse{
				Error: &e,
			})
			return
		}

		var despesa models.Despesa
		err = models.DB.First(&despesa, uri.ID).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), DespesaResponse{
				Error: &e,
			})
			return
		}

		file, err := c.FormFile("file")
		if err != nil {
			s := errNoFilePost.Error()
			c.JSON(http.StatusBadRequest, DespesaResponse{
				Error: &s,
			})
			return
		}

		url, err := uploadFormFile(c, nc, file, kind, despesa.Data, despesa.ID.String())
		if err != nil {
			e := err.Error()
			c.JSON(uploadStatus(err), DespesaResponse{
				Error: &e,
			})
			return
		}

		// The Kind values match the column names
		err = models.DB.Model(&despesa).Update(string(kind), url).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), DespesaResponse{
				Error: &e,
			})
			return
		}

		data := newDespesa(c, despesa)
		c.JSON(http.StatusOK, DespesaResponse{Data: &data})
	}
}

// ResolveDespesaDocument opens the document of the given kind for a
// despesa. Shareable references redirect to where the file is stored,
// references into the retired legacy store are reported as gone.
func ResolveDespesaDocument(kind documents.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri URIID
		err := c.ShouldBindUri(&uri)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		var despesa models.Despesa
		err = models.DB.First(&despesa, uri.ID).Error
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		reference := despesa.Comprovante
		if kind == documents.KindBoleto {
			reference = despesa.Boleto
		}

		switch documents.Classify(reference) {
		case documents.ClassificationEmpty:
			c.JSON(http.StatusNotFound, httpError{
				Error: errDocumentoNotFound.Error(),
			})
		case documents.ClassificationResolvable:
			c.Redirect(http.StatusFound, reference)
		case documents.ClassificationLegacy:
			c.JSON(http.StatusGone, httpError{
				Error: errDocumentoGone.Error(),
			})
		default:
			c.JSON(http.StatusBadRequest, httpError{
				Error: errDocumentoInvalid.Error(),
			})
		}
	}
}
