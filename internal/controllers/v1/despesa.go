package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/livro-caixa/backend/internal/documents"
	"github.com/livro-caixa/backend/internal/httputil"
	"github.com/livro-caixa/backend/internal/models"
	"github.com/livro-caixa/backend/internal/nextcloud"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Due dates are entered as calendar days in the owner's timezone, so
// "today" has to be computed there as well.
var saoPaulo = func() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.UTC
	}

	return loc
}()

// RegisterDespesaRoutes registers the routes for despesas with
// the RouterGroup that is passed.
func RegisterDespesaRoutes(r *gin.RouterGroup, nc *nextcloud.Client) {
	// Root group
	{
		r.OPTIONS("", OptionsDespesas)
		r.GET("", GetDespesas)
		r.POST("", CreateDespesa(nc))
	}

	// Document resolution
	{
		r.OPTIONS("/comprovante/:id", httputil.OptionsGet)
		r.GET("/comprovante/:id", ResolveDespesaDocument(documents.KindComprovante))
		r.OPTIONS("/boleto/:id", httputil.OptionsGet)
		r.GET("/boleto/:id", ResolveDespesaDocument(documents.KindBoleto))
	}

	// Despesa with ID
	{
		r.OPTIONS("/:id", OptionsDespesaDetail)
		r.GET("/:id", GetDespesa)
		r.PATCH("/:id", UpdateDespesa)
		r.DELETE("/:id", DeleteDespesa)
	}

	// Document upload
	{
		r.OPTIONS("/:id/comprovante", httputil.OptionsPost)
		r.POST("/:id/comprovante", UploadDespesaDocument(nc, documents.KindComprovante))
		r.OPTIONS("/:id/boleto", httputil.OptionsPost)
		r.POST("/:id/boleto", UploadDespesaDocument(nc, documents.KindBoleto))
	}
}

// OptionsDespesas returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
func OptionsDespesas(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsDespesaDetail returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
func OptionsDespesaDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Despesa{})
}

// GetDespesa returns a specific despesa.
func GetDespesa(c *gin.Context) {
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

	data := newDespesa(c, despesa)
	c.JSON(http.StatusOK, DespesaResponse{Data: &data})
}

// GetDespesas returns a list of despesas filtered by the query
// parameters.
func GetDespesas(c *gin.Context) {
	var filter DespesaQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DespesaListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()

	var q *gorm.DB
	q = models.DB.Order("datetime(despesas.data) DESC, datetime(despesas.created_at) DESC").Where(&model, queryFields...)

	if filter.Filtro != "" {
		if filter.Filtro != FiltroHoje && filter.Filtro != FiltroTodas {
			s := errFiltroInvalid.Error()
			c.JSON(http.StatusBadRequest, DespesaListResponse{
				Error: &s,
			})
			return
		}

		// "hoje" restricts to the due dates falling on the current
		// calendar day
		if filter.Filtro == FiltroHoje {
			now := time.Now().In(saoPaulo)
			date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			q = q.Where("despesas.data >= date(?)", date).Where("despesas.data < date(?)", date.AddDate(0, 0, 1))
		}
	}

	// Filter for the despesa being due at the same date
	if !filter.Date.IsZero() {
		date := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, time.UTC)
		q = q.Where("despesas.data >= date(?)", date).Where("despesas.data < date(?)", date.AddDate(0, 0, 1))
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("despesas.data >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("despesas.data < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	if !filter.ValorLessOrEqual.IsZero() {
		q = q.Where("despesas.valor <= ?", filter.ValorLessOrEqual)
	}

	if !filter.ValorMoreOrEqual.IsZero() {
		q = q.Where("despesas.valor >= ?", filter.ValorMoreOrEqual)
	}

	if filter.Fornecedor != "" {
		q = q.Where("despesas.fornecedor LIKE ?", fmt.Sprintf("%%%s%%", filter.Fornecedor))
	} else if slices.Contains(setFields, "Fornecedor") {
		q = q.Where("despesas.fornecedor = ''")
	}

	if filter.Descricao != "" {
		q = q.Where("despesas.descricao LIKE ?", fmt.Sprintf("%%%s%%", filter.Descricao))
	} else if slices.Contains(setFields, "Descricao") {
		q = q.Where("despesas.descricao = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 despesas and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var despesas []models.Despesa
	err := q.Find(&despesas).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DespesaListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DespesaListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Despesa, 0)
	for _, despesa := range despesas {
		data = append(data, newDespesa(c, despesa))
	}

	c.JSON(http.StatusOK, DespesaListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// CreateDespesa creates a new despesa. The request body is either JSON
// or, when documents are attached on creation, multipart form data with
// the files in the "comprovante" and "boleto" parts.
func CreateDespesa(nc *nextcloud.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() == "multipart/form-data" {
			createDespesaForm(c, nc)
			return
		}

		var editable DespesaEditable

		// Bind data and return error if not possible
		err := httputil.BindData(c, &editable)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), DespesaResponse{
				Error: &e,
			})
			return
		}

		if err := editable.validate(); err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, DespesaResponse{
				Error: &e,
			})
			return
		}

		despesa := editable.model()
		err = models.DB.Create(&despesa).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), DespesaResponse{
				Error: &e,
			})
			return
		}

		data := newDespesa(c, despesa)
		c.JSON(http.StatusCreated, DespesaResponse{Data: &data})
	}
}

// createDespesaForm creates a despesa from multipart form data,
// uploading the attached documents before the record is saved.
func createDespesaForm(c *gin.Context, nc *nextcloud.Client) {
	var editable DespesaEditable
	if err := c.ShouldBindWith(&editable, binding.FormMultipart); err != nil {
		s := httputil.ErrInvalidBody.Error()
		c.JSON(http.StatusBadRequest, DespesaResponse{
			Error: &s,
		})
		return
	}

	if err := editable.validate(); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DespesaResponse{
			Error: &e,
		})
		return
	}

	despesa := editable.model()

	slots := []struct {
		field  string
		kind   documents.Kind
		target *string
	}{
		{"comprovante", documents.KindComprovante, &despesa.Comprovante},
		{"boleto", documents.KindBoleto, &despesa.Boleto},
	}

	for _, slot := range slots {
		file, err := c.FormFile(slot.field)
		if err != nil {
			// The slot is not part of the form
			continue
		}

		// The record does not exist yet, so the file goes to the
		// shared directory
		url, err := uploadFormFile(c, nc, file, slot.kind, editable.Data, "")
		if err != nil {
			e := err.Error()
			c.JSON(uploadStatus(err), DespesaResponse{
				Error: &e,
			})
			return
		}

		*slot.target = url
	}

	err := models.DB.Create(&despesa).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DespesaResponse{
			Error: &e,
		})
		return
	}

	data := newDespesa(c, despesa)
	c.JSON(http.StatusCreated, DespesaResponse{Data: &data})
}

// UpdateDespesa updates an existing despesa. Only values to be updated
// need to be specified. Marking a despesa as paid is a PATCH with
// {"pago": true}.
func UpdateDespesa(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DespesaResponse{
			Error: &e,
		})
		return
	}

	// Get the despesa resource
	var despesa models.Despesa
	err = models.DB.First(&despesa, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DespesaResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, DespesaEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DespesaResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update DespesaEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DespesaResponse{
			Error: &e,
		})
		return
	}

	// If the valor set via the API request is not existent or
	// is 0, we use the old valor
	if update.Valor.IsZero() {
		update.Valor = despesa.Valor
	}

	if err := update.validate(updateFields...); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DespesaResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&despesa).Select("", updateFields...).Updates(update.model()).Error
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

// DeleteDespesa deletes a despesa.
func DeleteDespesa(c *gin.Context) {
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

	err = models.DB.Delete(&despesa).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
