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

// RegisterReceitaRoutes registers the routes for receitas with
// the RouterGroup that is passed.
func RegisterReceitaRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsReceitas)
		r.GET("", GetReceitas)
		r.POST("", CreateReceita)
	}

	// Receita with ID
	{
		r.OPTIONS("/:id", OptionsReceitaDetail)
		r.GET("/:id", GetReceita)
		r.PATCH("/:id", UpdateReceita)
		r.DELETE("/:id", DeleteReceita)
	}
}

// OptionsReceitas returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
func OptionsReceitas(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsReceitaDetail returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
func OptionsReceitaDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Receita{})
}

// GetReceita returns a specific receita.
func GetReceita(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceitaResponse{
			Error: &e,
		})
		return
	}

	var receita models.Receita
	err = models.DB.First(&receita, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceitaResponse{
			Error: &e,
		})
		return
	}

	data := newReceita(c, receita)
	c.JSON(http.StatusOK, ReceitaResponse{Data: &data})
}

// GetReceitas returns a list of receitas filtered by the query
// parameters.
func GetReceitas(c *gin.Context) {
	var filter ReceitaQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReceitaListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()

	var q *gorm.DB
	q = models.DB.Order("datetime(receitas.data) DESC, datetime(receitas.created_at) DESC").Where(&model, queryFields...)

	// Filter for the receita being at the same date
	if !filter.Date.IsZero() {
		date := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, time.UTC)
		q = q.Where("receitas.data >= date(?)", date).Where("receitas.data < date(?)", date.AddDate(0, 0, 1))
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("receitas.data >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("receitas.data < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	if !filter.ValorLessOrEqual.IsZero() {
		q = q.Where("receitas.valor <= ?", filter.ValorLessOrEqual)
	}

	if !filter.ValorMoreOrEqual.IsZero() {
		q = q.Where("receitas.valor >= ?", filter.ValorMoreOrEqual)
	}

	if filter.Descricao != "" {
		q = q.Where("receitas.descricao LIKE ?", fmt.Sprintf("%%%s%%", filter.Descricao))
	} else if slices.Contains(setFields, "Descricao") {
		q = q.Where("receitas.descricao = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 receitas and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var receitas []models.Receita
	err := q.Find(&receitas).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceitaListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceitaListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Receita, 0)
	for _, receita := range receitas {
		data = append(data, newReceita(c, receita))
	}

	c.JSON(http.StatusOK, ReceitaListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// CreateReceita creates a new receita.
func CreateReceita(c *gin.Context) {
	var editable ReceitaEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceitaResponse{
			Error: &e,
		})
		return
	}

	if err := editable.validate(); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ReceitaResponse{
			Error: &e,
		})
		return
	}

	receita := editable.model()
	err = models.DB.Create(&receita).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceitaResponse{
			Error: &e,
		})
		return
	}

	data := newReceita(c, receita)
	c.JSON(http.StatusCreated, ReceitaResponse{Data: &data})
}

// UpdateReceita updates an existing receita. Only values to be updated
// need to be specified.
func UpdateReceita(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceitaResponse{
			Error: &e,
		})
		return
	}

	// Get the receita resource
	var receita models.Receita
	err = models.DB.First(&receita, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceitaResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, ReceitaEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceitaResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update ReceitaEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceitaResponse{
			Error: &e,
		})
		return
	}

	// If the valor set via the API request is not existent or
	// is 0, we use the old valor
	if update.Valor.IsZero() {
		update.Valor = receita.Valor
	}

	if err := update.validate(updateFields...); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ReceitaResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&receita).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReceitaResponse{
			Error: &e,
		})
		return
	}

	data := newReceita(c, receita)
	c.JSON(http.StatusOK, ReceitaResponse{Data: &data})
}

// DeleteReceita deletes a receita.
func DeleteReceita(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var receita models.Receita
	err = models.DB.First(&receita, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&receita).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
