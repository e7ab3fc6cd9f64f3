package v1

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/livro-caixa/backend/internal/httputil"
	"github.com/livro-caixa/backend/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// RegisterFornecedorRoutes registers the routes for fornecedores with
// the RouterGroup that is passed.
func RegisterFornecedorRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsFornecedores)
		r.GET("", GetFornecedores)
		r.POST("", CreateFornecedor)
	}

	// Fornecedor with ID
	{
		r.OPTIONS("/:id", OptionsFornecedorDetail)
		r.GET("/:id", GetFornecedor)
		r.PATCH("/:id", UpdateFornecedor)
		r.DELETE("/:id", DeleteFornecedor)
	}
}

// OptionsFornecedores returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
func OptionsFornecedores(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsFornecedorDetail returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
func OptionsFornecedorDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Fornecedor{})
}

// GetFornecedor returns a specific fornecedor.
func GetFornecedor(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FornecedorResponse{
			Error: &e,
		})
		return
	}

	var fornecedor models.Fornecedor
	err = models.DB.First(&fornecedor, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FornecedorResponse{
			Error: &e,
		})
		return
	}

	data := newFornecedor(c, fornecedor)
	c.JSON(http.StatusOK, FornecedorResponse{Data: &data})
}

// GetFornecedores returns all fornecedores, sorted by name. The list
// feeds name completion in clients, so it is not paginated and the
// ordering uses Brazilian Portuguese collation instead of the byte
// order SQLite would give us.
func GetFornecedores(c *gin.Context) {
	var filter FornecedorQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, FornecedorListResponse{
			Error: &s,
		})
		return
	}

	var q *gorm.DB
	q = models.DB

	if filter.Nome != "" {
		q = q.Where("fornecedores.nome LIKE ?", fmt.Sprintf("%%%s%%", filter.Nome))
	}

	var fornecedores []models.Fornecedor
	err := q.Find(&fornecedores).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FornecedorListResponse{
			Error: &e,
		})
		return
	}

	collator := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(fornecedores, func(i, j int) bool {
		return collator.CompareString(fornecedores[i].Nome, fornecedores[j].Nome) < 0
	})

	data := make([]Fornecedor, 0)
	for _, fornecedor := range fornecedores {
		data = append(data, newFornecedor(c, fornecedor))
	}

	c.JSON(http.StatusOK, FornecedorListResponse{
		Data: data,
	})
}

// CreateFornecedor creates a new fornecedor.
func CreateFornecedor(c *gin.Context) {
	var editable FornecedorEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FornecedorResponse{
			Error: &e,
		})
		return
	}

	if err := editable.validate(); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, FornecedorResponse{
			Error: &e,
		})
		return
	}

	fornecedor := editable.model()
	err = models.DB.Create(&fornecedor).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FornecedorResponse{
			Error: &e,
		})
		return
	}

	data := newFornecedor(c, fornecedor)
	c.JSON(http.StatusCreated, FornecedorResponse{Data: &data})
}

// UpdateFornecedor updates an existing fornecedor.
func UpdateFornecedor(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FornecedorResponse{
			Error: &e,
		})
		return
	}

	// Get the fornecedor resource
	var fornecedor models.Fornecedor
	err = models.DB.First(&fornecedor, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FornecedorResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, FornecedorEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FornecedorResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update FornecedorEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FornecedorResponse{
			Error: &e,
		})
		return
	}

	if err := update.validate(updateFields...); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, FornecedorResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&fornecedor).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FornecedorResponse{
			Error: &e,
		})
		return
	}

	data := newFornecedor(c, fornecedor)
	c.JSON(http.StatusOK, FornecedorResponse{Data: &data})
}

// DeleteFornecedor deletes a fornecedor.
func DeleteFornecedor(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var fornecedor models.Fornecedor
	err = models.DB.First(&fornecedor, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&fornecedor).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
