package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/livro-caixa/backend/internal/httputil"
	"github.com/livro-caixa/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterCompraRoutes registers the routes for compras with
// the RouterGroup that is passed.
func RegisterCompraRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCompras)
		r.GET("", GetCompras)
		r.POST("", CreateCompra)
	}

	// Compra with ID
	{
		r.OPTIONS("/:id", OptionsCompraDetail)
		r.GET("/:id", GetCompra)
		r.PATCH("/:id", UpdateCompra)
		r.DELETE("/:id", DeleteCompra)
	}
}

// OptionsCompras returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
func OptionsCompras(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsCompraDetail returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
func OptionsCompraDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Compra{})
}

// GetCompra returns a specific compra.
func GetCompra(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompraResponse{
			Error: &e,
		})
		return
	}

	var compra models.Compra
	err = models.DB.First(&compra, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompraResponse{
			Error: &e,
		})
		return
	}

	data := newCompra(c, compra)
	c.JSON(http.StatusOK, CompraResponse{Data: &data})
}

// GetCompras returns a list of compras filtered by the query
// parameters.
func GetCompras(c *gin.Context) {
	var filter CompraQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CompraListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()

	var q *gorm.DB
	q = models.DB.Order("datetime(compras.data) DESC, datetime(compras.created_at) DESC").Where(&model, queryFields...)

	// Filter for the compra being at the same date
	if !filter.Date.IsZero() {
		date := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, time.UTC)
		q = q.Where("compras.data >= date(?)", date).Where("compras.data < date(?)", date.AddDate(0, 0, 1))
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("compras.data >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("compras.data < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	if !filter.ValorLessOrEqual.IsZero() {
		q = q.Where("compras.valor <= ?", filter.ValorLessOrEqual)
	}

	if !filter.ValorMoreOrEqual.IsZero() {
		q = q.Where("compras.valor >= ?", filter.ValorMoreOrEqual)
	}

	if filter.Fornecedor != "" {
		q = q.Where("compras.fornecedor LIKE ?", fmt.Sprintf("%%%s%%", filter.Fornecedor))
	} else if slices.Contains(setFields, "Fornecedor") {
		q = q.Where("compras.fornecedor = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 compras and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var compras []models.Compra
	err := q.Find(&compras).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompraListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompraListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Compra, 0)
	for _, compra := range compras {
		data = append(data, newCompra(c, compra))
	}

	c.JSON(http.StatusOK, CompraListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// CreateCompra creates a new compra.
func CreateCompra(c *gin.Context) {
	var editable CompraEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompraResponse{
			Error: &e,
		})
		return
	}

	if err := editable.validate(); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CompraResponse{
			Error: &e,
		})
		return
	}

	compra := editable.model()
	err = models.DB.Create(&compra).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompraResponse{
			Error: &e,
		})
		return
	}

	data := newCompra(c, compra)
	c.JSON(http.StatusCreated, CompraResponse{Data: &data})
}

// UpdateCompra updates an existing compra. Only values to be updated
// need to be specified.
func UpdateCompra(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompraResponse{
			Error: &e,
		})
		return
	}

	// Get the compra resource
	var compra models.Compra
	err = models.DB.First(&compra, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompraResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, CompraEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompraResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update CompraEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompraResponse{
			Error: &e,
		})
		return
	}

	// If the valor set via the API request is not existent or
	// is 0, we use the old valor
	if update.Valor.IsZero() {
		update.Valor = compra.Valor
	}

	if err := update.validate(updateFields...); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CompraResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&compra).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompraResponse{
			Error: &e,
		})
		return
	}

	data := newCompra(c, compra)
	c.JSON(http.StatusOK, CompraResponse{Data: &data})
}

// DeleteCompra deletes a compra.
func DeleteCompra(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var compra models.Compra
	err = models.DB.First(&compra, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&compra).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
